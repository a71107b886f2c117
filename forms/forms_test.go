package forms

import (
	"testing"

	"github.com/rpupo63/nexusconsult-backend/errs"
)

func TestValidateEmail(t *testing.T) {
	cases := map[string]bool{
		"ada@example.com":   true,
		"a@b.co":            true,
		"ada.example.com":   false,
		"ada@example":       false,
		"":                  false,
		"   ":               false,
		"no-at-sign.at.all": false,
	}
	for in, ok := range cases {
		if got := ValidateEmail(in) == ""; got != ok {
			t.Errorf("ValidateEmail(%q) valid=%v, want %v", in, got, ok)
		}
	}
}

func TestValidatePasswordBoundary(t *testing.T) {
	if msg := ValidatePassword("Abcdefg1"); msg != "" {
		t.Fatalf("8 chars with upper, lower and digit should pass: %s", msg)
	}
	if msg := ValidatePassword("Abcdef1"); msg != "Password must be at least 8 characters" {
		t.Fatalf("7 chars should fail on length, got %q", msg)
	}
	for _, weak := range []string{"abcdefg1", "ABCDEFG1", "Abcdefgh"} {
		if ValidatePassword(weak) == "" {
			t.Fatalf("%q should fail the character class rule", weak)
		}
	}
}

func TestContactFormRequiresFields(t *testing.T) {
	e := ContactForm{Email: "bad"}.Validate()
	for _, field := range []string{"name", "email", "subject", "message"} {
		if _, ok := e[field]; !ok {
			t.Errorf("expected error for %s", field)
		}
	}
	if _, ok := e["phone"]; ok {
		t.Errorf("phone is optional")
	}

	valid := ContactForm{Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "Hello"}
	if !valid.Validate().Valid() {
		t.Fatalf("expected valid form, got %v", valid.Validate())
	}
}

func TestEmailWithoutAtAlwaysFails(t *testing.T) {
	f := ContactForm{Name: "Ada", Email: "ada.example.com", Subject: "Hi", Message: "Hello"}
	if f.Validate()["email"] != "Email is invalid" {
		t.Fatalf("expected invalid email")
	}
}

func TestErrorsErr(t *testing.T) {
	if (Errors{}).Err() != nil {
		t.Fatal("empty errors should be nil")
	}
	err := Errors{"email": "Email is invalid"}.Err()
	if !errs.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRegistrationWizard(t *testing.T) {
	w := NewRegistrationWizard()

	if w.Next() {
		t.Fatal("empty first step must not advance")
	}
	if w.Step() != 0 || len(w.Errors()) != 3 {
		t.Fatalf("expected 3 errors on step 0, got %v", w.Errors())
	}

	w.SetAll(Values{
		FieldName:            "Ada Lovelace",
		FieldEmail:           "ada@example.com",
		FieldPassword:        "Abcdefg1",
		FieldConfirmPassword: "Abcdefg2",
	})
	if w.Next() || w.Errors()[FieldConfirmPassword] != "Passwords do not match" {
		t.Fatalf("mismatched confirmation must fail: %v", w.Errors())
	}

	w.Set(FieldConfirmPassword, "Abcdefg1")
	if !w.Next() || w.Step() != 1 || !w.IsLast() {
		t.Fatalf("valid first step should advance, errors=%v", w.Errors())
	}

	w.Back()
	if w.Step() != 0 || len(w.Errors()) != 0 {
		t.Fatal("Back should move without validating")
	}
	w.Next()

	if w.Begin() {
		t.Fatal("missing resume and terms must block submission")
	}
	w.Set(FieldResume, "cv.pdf")
	w.Set(FieldAgreeTerms, "true")
	if !w.Begin() {
		t.Fatalf("complete form should begin, errors=%v", w.Errors())
	}
	if w.Begin() {
		t.Fatal("second Begin while in flight must be refused")
	}
	w.Finish()
	if w.Submitting() {
		t.Fatal("Finish should clear submitting")
	}
}

func TestWizardSetClearsFieldError(t *testing.T) {
	w := NewRegistrationWizard()
	w.Next()
	w.Set(FieldName, "Ada")
	if _, ok := w.Errors()[FieldName]; ok {
		t.Fatal("Set should clear the field error")
	}
}

func TestWizardGoTo(t *testing.T) {
	w := NewRegistrationWizard()
	if w.GoTo(1) {
		t.Fatal("GoTo should stop at the failing step")
	}
	if w.Step() != 0 || w.StepName() != "account" {
		t.Fatalf("expected to stay on account, got %d", w.Step())
	}
	if w.GoTo(5) {
		t.Fatal("out of range step")
	}
}
