package forms

// Registration field names.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldResume          = "resume"
	FieldAgreeTerms      = "agreeTerms"
)

// NewRegistrationWizard returns the two-step account form: credentials, then
// resume and terms.
func NewRegistrationWizard() *Wizard {
	return NewWizard(
		Step{Name: "account", Validate: validateAccount},
		Step{Name: "profile", Validate: validateProfile},
	)
}

func validateAccount(v Values) Errors {
	e := Errors{}
	e.Require(FieldName, v[FieldName], "Full name is required")
	e.email(FieldEmail, v[FieldEmail])
	if msg := ValidatePassword(v[FieldPassword]); msg != "" {
		e[FieldPassword] = msg
	}
	if v[FieldPassword] != v[FieldConfirmPassword] {
		e[FieldConfirmPassword] = "Passwords do not match"
	}
	return e
}

func validateProfile(v Values) Errors {
	e := Errors{}
	e.Require(FieldResume, v[FieldResume], "Please upload your resume")
	if v[FieldAgreeTerms] != "true" {
		e[FieldAgreeTerms] = "You must agree to the terms and conditions"
	}
	return e
}
