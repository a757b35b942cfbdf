package email

import (
	"bytes"
	"html/template"
	"time"
)

// BaseEmailData contains data for the base email wrapper
type BaseEmailData struct {
	Content      template.HTML
	Subject      string
	StoreURL     string
	SupportEmail string
	Year         int
}

// baseEmailTemplate is the reusable wrapper for all emails
const baseEmailTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Subject}}</title>
    <style>
        body {
            font-family: Georgia, 'Times New Roman', serif;
            line-height: 1.6;
            color: #2b2b2b;
            margin: 0;
            padding: 0;
            background-color: #f3efe6;
        }
        .email-wrapper {
            max-width: 600px;
            margin: 0 auto;
            background-color: #ffffff;
        }
        .header {
            background-color: #3b4a2f;
            padding: 20px 30px;
        }
        .brand-name {
            font-size: 22px;
            font-weight: 700;
            color: #f3efe6;
            margin: 0;
            letter-spacing: 1px;
        }
        .brand-tagline {
            font-size: 12px;
            color: #c9b98f;
            margin: 4px 0 0 0;
        }
        .content {
            padding: 30px 20px;
        }
        .footer {
            background-color: #2b2b2b;
            color: #bdb6a6;
            padding: 24px 20px;
            text-align: center;
            font-size: 13px;
        }
        .footer a {
            color: #c9b98f;
            text-decoration: none;
        }
        @media only screen and (max-width: 600px) {
            .header {
                padding: 15px 20px;
            }
            .content {
                padding: 20px 15px;
            }
        }
    </style>
</head>
<body>
    <div class="email-wrapper">
        <div class="header">
            <p class="brand-name">HUNT KITCHEN</p>
            <p class="brand-tagline">Field to table wild game recipes and gear</p>
        </div>

        <div class="content">
            {{.Content}}
        </div>

        <div class="footer">
            <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>
            <span style="color: #666; margin: 0 8px;">|</span>
            <a href="{{.StoreURL}}">{{.StoreURL}}</a>
            <div style="margin-top: 16px; font-size: 11px; color: #888;">
                &copy; {{.Year}} Hunt Kitchen
            </div>
        </div>
    </div>
</body>
</html>
`

var baseTmpl = template.Must(template.New("base").Parse(baseEmailTemplate))

// WrapEmailContent wraps content in the base email template
func (s *Service) WrapEmailContent(content string, subject string) (string, error) {
	data := BaseEmailData{
		Content:      template.HTML(content),
		Subject:      subject,
		StoreURL:     s.storeURL,
		SupportEmail: s.supportEmail(),
		Year:         time.Now().Year(),
	}

	var result bytes.Buffer
	if err := baseTmpl.Execute(&result, data); err != nil {
		return "", err
	}

	return result.String(), nil
}
