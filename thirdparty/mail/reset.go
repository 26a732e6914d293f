package mail

import (
	"bytes"
	"html/template"
	"net/url"
)

const ResetSubject = "Reset your Sunyani Fashion Designers password"

var resetTemplate = template.Must(template.New("reset").Parse(`<p>Hello {{.Name}},</p>
<p>We received a request to reset your password. The link below is valid until {{.ExpiresAt}}.</p>
<p><a href="{{.Link}}">Reset password</a></p>
<p>If you did not ask for this, you can ignore this mail.</p>`))

type ResetMailData struct {
	Name      string
	ExpiresAt string
}

// ResetBody renders the reset mail body with a link to baseURL?token=token.
func ResetBody(baseURL, token string, data ResetMailData) (string, error) {
	link, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	q := link.Query()
	q.Set("token", token)
	link.RawQuery = q.Encode()

	var buf bytes.Buffer
	err = resetTemplate.Execute(&buf, struct {
		ResetMailData
		Link string
	}{data, link.String()})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
