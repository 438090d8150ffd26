// Package mailer renders notification emails and delivers them over SMTP.
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

const layout = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <div style="max-width: 600px; margin: 0 auto; padding: 24px;">
    <h1 style="color: #1e40af;">{{.Heading}}</h1>
    {{block "content" .}}{{end}}
    <p style="margin-top: 32px;">
      <a href="{{.AppURL}}" style="background: #1e40af; color: #ffffff; padding: 12px 20px; text-decoration: none; border-radius: 6px;">{{.Action}}</a>
    </p>
    <p style="font-size: 12px; color: #6b7280;">You are receiving this email because of your Entity Guardian notification settings.</p>
  </div>
</body>
</html>`

const notificationContent = `{{define "content"}}
<p>Hello {{.RecipientName}},</p>
<h2>{{.Title}}</h2>
<p>{{.Message}}</p>
{{if .EntityName}}<p><strong>Entity:</strong> {{.EntityName}}</p>{{end}}
{{if .DueDate}}<p><strong>Due date:</strong> {{.DueDate}}</p>{{end}}
{{if .Amount}}<p><strong>Amount:</strong> ${{.Amount}}</p>{{end}}
{{end}}`

const trialContent = `{{define "content"}}
<p>Hello {{.RecipientName}},</p>
<p>Your Entity Guardian free trial ends in <strong>{{.DaysLeft}} {{if eq .DaysLeft 1}}day{{else}}days{{end}}</strong>, on {{.TrialEnd}}.</p>
<p>Choose a plan now to keep tracking your entities, deadlines and compliance fees without interruption.</p>
{{end}}`

var headings = map[string]string{
	model.TypeRenewalReminder: "Renewal Reminder",
	model.TypePaymentDue:      "Payment Due",
	model.TypeComplianceCheck: "Compliance Check",
}

type notificationView struct {
	model.NotificationEmail
	Heading string
	Action  string
	AppURL  string
}

type trialView struct {
	RecipientName string
	DaysLeft      int
	TrialEnd      string
	Heading       string
	Action        string
	AppURL        string
}

// Renderer builds escaped HTML emails.
type Renderer struct {
	appURL       string
	notification *template.Template
	trial        *template.Template
}

// NewRenderer parses the email templates. appURL is linked from every email.
func NewRenderer(appURL string) (*Renderer, error) {
	base, err := template.New("layout").Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	notification, err := template.Must(base.Clone()).Parse(notificationContent)
	if err != nil {
		return nil, fmt.Errorf("parse notification template: %w", err)
	}

	trial, err := template.Must(base.Clone()).Parse(trialContent)
	if err != nil {
		return nil, fmt.Errorf("parse trial template: %w", err)
	}

	return &Renderer{appURL: appURL, notification: notification, trial: trial}, nil
}

// Notification renders the email for a dispatched scheduled notification.
func (r *Renderer) Notification(data model.NotificationEmail) (model.EmailMessage, error) {
	heading, ok := headings[data.Type]
	if !ok {
		heading = "Notification"
	}

	if data.RecipientName == "" {
		data.RecipientName = "there"
	}

	view := notificationView{
		NotificationEmail: data,
		Heading:           heading,
		Action:            "View in Entity Guardian",
		AppURL:            r.appURL,
	}

	var buf bytes.Buffer
	if err := r.notification.Execute(&buf, view); err != nil {
		return model.EmailMessage{}, fmt.Errorf("render notification email: %w", err)
	}

	return model.EmailMessage{
		NotificationID: data.NotificationID,
		To:             data.To,
		Subject:        fmt.Sprintf("%s: %s", heading, data.Title),
		HTML:           buf.String(),
	}, nil
}

// TrialReminder renders the reminder for a subscriber whose trial ends at trialEnd.
func (r *Renderer) TrialReminder(sub model.Subscriber, tier model.TrialTier, trialEnd time.Time) (model.EmailMessage, error) {
	name := sub.FullName
	if name == "" {
		name = "there"
	}

	view := trialView{
		RecipientName: name,
		DaysLeft:      tier.DaysLeft,
		TrialEnd:      trialEnd.Format("January 2, 2006"),
		Heading:       "Your trial is ending soon",
		Action:        "Choose a plan",
		AppURL:        r.appURL + "/billing",
	}

	var buf bytes.Buffer
	if err := r.trial.Execute(&buf, view); err != nil {
		return model.EmailMessage{}, fmt.Errorf("render trial email: %w", err)
	}

	subject := fmt.Sprintf("Your Entity Guardian trial ends in %d days", tier.DaysLeft)
	if tier.DaysLeft == 1 {
		subject = "Your Entity Guardian trial ends tomorrow"
	}

	return model.EmailMessage{
		To:      sub.Email,
		Subject: subject,
		HTML:    buf.String(),
	}, nil
}
