package models

// OTPPurpose scopes a one-time code slot.
type OTPPurpose string

const (
	OTPEmailVerification OTPPurpose = "email_verification" // subject: public id
	OTPPhoneVerification OTPPurpose = "phone_verification" // subject: phone number
	OTPSecondaryEmail    OTPPurpose = "secondary_email"    // subject: public id
)
