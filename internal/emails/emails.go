// Package emails renders the HTML bodies of outgoing mail.
package emails

import (
	"bytes"
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(template.ParseFS(files, "templates/*.html"))

// Message is a rendered email.
type Message struct {
	Subject string
	HTML    string
}

// Data is the template input. Unused fields are left empty.
type Data struct {
	Title   string
	Name    string
	Link    string
	Code    string
	Message string
	Support string
}

func render(subject, name string, data Data) (Message, error) {
	if data.Title == "" {
		data.Title = subject
	}
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return Message{}, err
	}
	return Message{Subject: subject, HTML: buf.String()}, nil
}

// Verification carries the email verification link.
func Verification(name, link, support string) (Message, error) {
	return render("Welcome! Please verify your email", "verification",
		Data{Title: "Verify your email", Name: name, Link: link, Support: support})
}

// OTP carries a one-time code.
func OTP(name, code, support string) (Message, error) {
	return render("OTP for Email Verification", "otp",
		Data{Title: "Your verification code", Name: name, Code: code, Support: support})
}

// PasswordReset carries the password reset link.
func PasswordReset(name, link, support string) (Message, error) {
	return render("Reset your Expense Management System account password", "reset",
		Data{Title: "Reset your password", Name: name, Link: link, Support: support})
}

// PasswordChanged confirms a password change or reset.
func PasswordChanged(name, support string) (Message, error) {
	return render("Your password has been changed successfully", "password_changed",
		Data{Title: "Password changed", Name: name, Support: support})
}

// ContactReceived acknowledges a contact-us message.
func ContactReceived(name, message, support string) (Message, error) {
	return render("We received your message", "contact",
		Data{Title: "Thanks for contacting us", Name: name, Message: message, Support: support})
}

// AdminKey delivers a freshly generated admin key.
func AdminKey(name, key, loginURL, support string) (Message, error) {
	return render("Your Admin Access Key", "admin_key",
		Data{Title: "Admin Access Approved", Name: name, Code: key, Link: loginURL, Support: support})
}
