package email

import (
	"fmt"
)

// LeadEmailData contains the data needed for booking-lead email templates.
type LeadEmailData struct {
	BookingID     string
	PatientName   string
	PatientEmail  string
	PatientPhone  string
	Country       string
	TreatmentName string
	HospitalName  string
	Notes         string
	Locale        string // "en" or "ar" — language the lead was submitted in
	SiteName      string
	BaseURL       string
	InboxEmail    string
}

// BuildLeadNotificationEmail creates the internal notification sent to the
// patient-coordination inbox when a new lead arrives.
func BuildLeadNotificationEmail(data LeadEmailData) Message {
	siteName := data.SiteName
	if siteName == "" {
		siteName = "Shifa AlHind"
	}

	subject := fmt.Sprintf("New booking lead: %s — %s", data.PatientName, data.TreatmentName)

	textBody := fmt.Sprintf(`A new booking lead was submitted on %s.

Booking ID: %s
Patient:    %s
Email:      %s
Phone:      %s
Country:    %s
Treatment:  %s
Hospital:   %s
Language:   %s

Notes:
%s

Review it in the admin panel:
%s/admin/bookings/%s`,
		siteName,
		data.BookingID, data.PatientName, data.PatientEmail, data.PatientPhone,
		data.Country, data.TreatmentName, data.HospitalName, data.Locale,
		data.Notes,
		data.BaseURL, data.BookingID)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">New booking lead</h2>
    <table style="border-collapse: collapse; width: 100%%;">
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Patient</td><td style="padding: 6px 0;"><strong>%s</strong></td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Email</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Phone</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Country</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Treatment</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Hospital</td><td style="padding: 6px 0;">%s</td></tr>
        <tr><td style="padding: 6px 12px 6px 0; color: #6b7280;">Language</td><td style="padding: 6px 0;">%s</td></tr>
    </table>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">%s</p>
    <p style="text-align: center; margin: 30px 0;">
        <a href="%s/admin/bookings/%s" style="background-color: #0d9488; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Open in admin panel</a>
    </p>
</body>
</html>`,
		data.PatientName, data.PatientEmail, data.PatientPhone, data.Country,
		data.TreatmentName, data.HospitalName, data.Locale,
		data.Notes,
		data.BaseURL, data.BookingID)

	return Message{
		To:       []string{data.InboxEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildLeadAcknowledgementEmail creates the confirmation sent to the patient,
// in the language they submitted the enquiry in.
func BuildLeadAcknowledgementEmail(data LeadEmailData) Message {
	siteName := data.SiteName
	if siteName == "" {
		siteName = "Shifa AlHind"
	}

	if data.Locale == "ar" {
		subject := "تم استلام طلبك — " + siteName

		textBody := fmt.Sprintf(`عزيزي %s،

شكراً لتواصلك مع %s. لقد استلمنا طلبك بخصوص: %s.

سيتواصل معك أحد منسقي المرضى لدينا خلال 24 ساعة.

رقم الطلب: %s

مع أطيب التحيات،
فريق %s`,
			data.PatientName, siteName, data.TreatmentName, data.BookingID, siteName)

		htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Segoe UI', Tahoma, sans-serif; line-height: 1.8; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; direction: rtl; text-align: right;">
    <h2 style="color: #0d9488;">عزيزي %s،</h2>
    <p>شكراً لتواصلك مع %s. لقد استلمنا طلبك بخصوص: <strong>%s</strong>.</p>
    <p>سيتواصل معك أحد منسقي المرضى لدينا خلال 24 ساعة.</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">رقم الطلب: <strong>%s</strong></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">مع أطيب التحيات،<br>فريق %s</p>
</body>
</html>`,
			data.PatientName, siteName, data.TreatmentName, data.BookingID, siteName)

		return Message{
			To:       []string{data.PatientEmail},
			Subject:  subject,
			TextBody: textBody,
			HTMLBody: htmlBody,
		}
	}

	subject := fmt.Sprintf("We received your enquiry — %s", siteName)

	textBody := fmt.Sprintf(`Dear %s,

Thank you for contacting %s. We have received your enquiry about: %s.

One of our patient coordinators will reach out within 24 hours.

Reference: %s

Best regards,
The %s Team`,
		data.PatientName, siteName, data.TreatmentName, data.BookingID, siteName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #0d9488;">Dear %s,</h2>
    <p>Thank you for contacting %s. We have received your enquiry about: <strong>%s</strong>.</p>
    <p>One of our patient coordinators will reach out within 24 hours.</p>
    <p style="background-color: #f3f4f6; padding: 10px 15px; border-radius: 4px;">Reference: <strong>%s</strong></p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Best regards,<br>The %s Team</p>
</body>
</html>`,
		data.PatientName, siteName, data.TreatmentName, data.BookingID, siteName)

	return Message{
		To:       []string{data.PatientEmail},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
