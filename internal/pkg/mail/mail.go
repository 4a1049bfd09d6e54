package mail

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"net/smtp"
	"strings"
	"time"
)

// Config holds mail provider settings.
type Config struct {
	APIKeyPublic  string
	APIKeyPrivate string
	From          string
	FromName      string
	SMTPHost      string
	SMTPPort      int
	SMTPUser      string
	SMTPPass      string
}

// Message is a single email to send.
type Message struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender sends emails via the Mailjet HTTP API, falling back to SMTP when no
// API keys are configured. A sender with neither configured drops mail
// silently, which keeps local development quiet.
type Sender struct {
	cfg    Config
	client *http.Client
}

func New(cfg Config) *Sender {
	return &Sender{
		cfg:    cfg,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send dispatches an email. Failures are returned to the caller, who is
// expected to log and move on; a failed send never rolls back writes.
func (s *Sender) Send(msg Message) error {
	if s.cfg.APIKeyPublic != "" && s.cfg.APIKeyPrivate != "" {
		return s.sendMailjet(msg)
	}
	if s.cfg.SMTPHost != "" {
		return s.sendSMTP(msg)
	}
	return nil
}

// sendMailjet sends via the Mailjet v3.1 send API.
func (s *Sender) sendMailjet(msg Message) error {
	payload, _ := json.Marshal(map[string]interface{}{
		"Messages": []map[string]interface{}{
			{
				"From": map[string]string{
					"Email": s.cfg.From,
					"Name":  s.cfg.FromName,
				},
				"To": []map[string]string{
					{"Email": msg.To, "Name": msg.ToName},
				},
				"Subject":  msg.Subject,
				"HTMLPart": msg.HTML,
			},
		},
	})

	req, err := http.NewRequest(http.MethodPost, "https://api.mailjet.com/v3.1/send", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.SetBasicAuth(s.cfg.APIKeyPublic, s.cfg.APIKeyPrivate)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		var errResp struct {
			ErrorMessage string `json:"ErrorMessage"`
		}
		json.NewDecoder(resp.Body).Decode(&errResp)
		return fmt.Errorf("mailjet error %d: %s", resp.StatusCode, errResp.ErrorMessage)
	}
	return nil
}

// sendSMTP sends via net/smtp.
func (s *Sender) sendSMTP(msg Message) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.SMTPHost, s.cfg.SMTPPort)

	from := s.cfg.From
	if from == "" {
		from = s.cfg.SMTPUser
	}

	var body bytes.Buffer
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("From: %s\r\n", from))
	body.WriteString(fmt.Sprintf("To: %s\r\n", msg.To))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", msg.Subject))
	body.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	body.WriteString("\r\n")
	body.WriteString(msg.HTML)

	auth := smtp.PlainAuth("", s.cfg.SMTPUser, s.cfg.SMTPPass, s.cfg.SMTPHost)
	return smtp.SendMail(addr, auth, from, []string{msg.To}, body.Bytes())
}

const applicationConfirmTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#14532d">Application Received</h2>
  <p>Dear {{.Name}},</p>
  <p>Your application for the 1000 Tech Talent Programme has been received successfully.</p>
  <p>Your quiz score: <strong>{{.Score}}</strong></p>
  <p>Our team at {{.Company}} will review your submission and reach out with the next steps.</p>
  <p style="color:#999;font-size:12px;margin-top:24px">This is an automated message, please do not reply.<br />&copy;{{year}} {{.Company}}</p>
</div>
</body>
</html>`

const passwordResetTpl = `<!DOCTYPE html>
<html>
<body style="font-family:sans-serif;background:#f5f5f5;padding:20px">
<div style="max-width:600px;margin:0 auto;background:#fff;border-radius:8px;padding:24px">
  <h2 style="color:#14532d">Password Reset</h2>
  <p>A password reset was requested for your account. Click the button below to choose a new password. The link expires in 30 minutes.</p>
  <p style="margin-top:24px">
    <a href="{{.ResetLink}}" style="background:#14532d;color:#fff;padding:10px 20px;text-decoration:none;border-radius:4px">Reset password</a>
  </p>
  <p style="color:#999;font-size:12px">If you did not request this, you can safely ignore this email.</p>
</div>
</body>
</html>`

// ApplicationConfirmData is the data for scholarship confirmation emails.
type ApplicationConfirmData struct {
	Name    string
	Score   int
	Company string
}

// PasswordResetData is the data for password reset emails.
type PasswordResetData struct {
	ResetLink string
}

func renderTemplate(tpl string, data interface{}) (string, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"year": func() int {
			return time.Now().Year()
		},
	}).Parse(tpl)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// SendApplicationConfirm sends the scholarship application confirmation.
func (s *Sender) SendApplicationConfirm(to, toName string, data ApplicationConfirmData) error {
	if strings.TrimSpace(data.Company) == "" {
		data.Company = "Codeverse Africa"
	}
	html, err := renderTemplate(applicationConfirmTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      to,
		ToName:  toName,
		Subject: "Successful Application",
		HTML:    html,
	})
}

// SendPasswordReset sends a password reset link.
func (s *Sender) SendPasswordReset(to string, data PasswordResetData) error {
	html, err := renderTemplate(passwordResetTpl, data)
	if err != nil {
		return err
	}
	return s.Send(Message{
		To:      to,
		Subject: "Reset your password",
		HTML:    html,
	})
}
