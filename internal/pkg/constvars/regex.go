package constvars

const (
	RegexPersonName  = `^[A-Z][a-z]+(?: [A-Z][a-z]+)*$`
	RegexPhoneNumber = `^[789]\d{9}$`
	RegexLocation    = `^[A-Za-z0-9\s,./:"]*$`
	RegexPatientID   = `^[A-Za-z0-9_-]+$`
)
