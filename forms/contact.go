package forms

import "strings"

// ContactForm is the public contact form. Phone is optional.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (f ContactForm) Validate() Errors {
	e := Errors{}
	e.Require("name", f.Name, "Name is required")
	e.email("email", f.Email)
	e.Require("subject", f.Subject, "Subject is required")
	e.Require("message", f.Message, "Message is required")
	return e
}

// NewsletterForm is the footer signup.
type NewsletterForm struct {
	Email  string `json:"email"`
	Source string `json:"source"`
}

func (f NewsletterForm) Validate() Errors {
	e := Errors{}
	e.email("email", f.Email)
	return e
}

// ChatForm is one message typed into the chat widget.
type ChatForm struct {
	Message string `json:"message"`
}

func (f ChatForm) Validate() Errors {
	e := Errors{}
	e.Require("message", f.Message, "Message cannot be empty")
	return e
}

// CommentForm is a reader comment on a blog post.
type CommentForm struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Content  string `json:"content"`
	ParentID string `json:"parentId"`
}

func (f CommentForm) Validate() Errors {
	e := Errors{}
	e.Require("name", f.Name, "Name is required")
	e.email("email", f.Email)
	e.Require("content", f.Content, "Comment cannot be empty")
	return e
}

// MessageForm is an applicant's reply on the dashboard.
type MessageForm struct {
	Content string `json:"content"`
}

func (f MessageForm) Validate() Errors {
	e := Errors{}
	e.Require("content", f.Content, "Message cannot be empty")
	return e
}

// Trimmed returns f with surrounding whitespace removed from every field.
func (f ContactForm) Trimmed() ContactForm {
	return ContactForm{
		Name:    strings.TrimSpace(f.Name),
		Email:   strings.TrimSpace(f.Email),
		Phone:   strings.TrimSpace(f.Phone),
		Subject: strings.TrimSpace(f.Subject),
		Message: strings.TrimSpace(f.Message),
	}
}
