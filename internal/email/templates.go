package email

import (
	"bytes"
	"fmt"
	"html/template"

	"skillgate_backend/internal/models"
)

// TemplateManager хранит скомпилированные шаблоны писем
type TemplateManager struct {
	templates map[string]*template.Template
}

const accountDecisionTmpl = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Hello, {{.Name}}!</h2>
	{{if .Approved}}
	<p>Your SkillGate account has been <b>approved</b> by the administrator.</p>
	<p>You now have full access to the platform.</p>
	{{else}}
	<p>Unfortunately, your SkillGate account has been <b>rejected</b> by the administrator.</p>
	<p>If you believe this is a mistake, please contact support.</p>
	{{end}}
	<p>Best regards,<br>The SkillGate Team</p>
</body>
</html>`

const applicationStatusTmpl = `
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>Application status update</h2>
	<p>The status of your application for <b>{{.DriveTitle}}</b> has changed to: <b>{{.Status}}</b>.</p>
	<p>Sign in to your dashboard for details.</p>
	<p>Best regards,<br>The SkillGate Team</p>
</body>
</html>`

// NewTemplateManager компилирует встроенные шаблоны
func NewTemplateManager() *TemplateManager {
	return &TemplateManager{
		templates: map[string]*template.Template{
			"account_decision":   template.Must(template.New("account_decision").Parse(accountDecisionTmpl)),
			"application_status": template.Must(template.New("application_status").Parse(applicationStatusTmpl)),
		},
	}
}

// AccountDecision рендерит письмо о решении по аккаунту
func (tm *TemplateManager) AccountDecision(name string, status models.UserStatus) (subject, html string, err error) {
	subject = "Your account has been rejected"
	if status == models.UserStatusApproved {
		subject = "Your account has been approved"
	}

	html, err = tm.render("account_decision", TemplateData{
		"Name":     name,
		"Approved": status == models.UserStatusApproved,
	})
	return subject, html, err
}

// ApplicationStatus рендерит письмо о смене статуса отклика
func (tm *TemplateManager) ApplicationStatus(driveTitle string, status models.ApplicationStatus) (subject, html string, err error) {
	subject = fmt.Sprintf("Application update: %s", driveTitle)

	html, err = tm.render("application_status", TemplateData{
		"DriveTitle": driveTitle,
		"Status":     string(status),
	})
	return subject, html, err
}

func (tm *TemplateManager) render(name string, data TemplateData) (string, error) {
	tmpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
