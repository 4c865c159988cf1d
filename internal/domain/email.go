package domain

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the
// given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ReportEmailData holds data for the attendance report email.
type ReportEmailData struct {
	EventName string
	EventDate string
	Rows      []ReportEmailRow
}

// ReportEmailRow is one table row of the report email body.
type ReportEmailRow struct {
	StudentID      string
	StudentName    string
	RFID           string
	AttendanceTime string
}
