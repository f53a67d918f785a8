package engine

import (
	"fmt"
	"strings"

	"github.com/kolah/wilbur/internal/model"
)

// ClientDoc is the human-readable documentation threaded alongside the
// top-level model.
type ClientDoc struct {
	Title          string
	Description    string
	Version        string
	ContactEmail   string
	LicenseName    string
	LicenseURL     string
	TermsOfService string
}

// MethodDoc is the documentation threaded alongside one method.
type MethodDoc struct {
	Summary     string
	Description string
	HTTPMethod  string
	Path        string
	OperationID string
}

// ClientDocFor collects the document-level description fields.
func ClientDocFor(info model.Info) ClientDoc {
	doc := ClientDoc{
		Title:          strings.TrimSpace(info.Title),
		Description:    strings.TrimSpace(info.Description),
		Version:        strings.TrimSpace(info.Version),
		TermsOfService: strings.TrimSpace(info.TermsOfService),
	}
	if info.Contact != nil {
		doc.ContactEmail = strings.TrimSpace(info.Contact.Email)
	}
	if info.License != nil {
		doc.LicenseName = strings.TrimSpace(info.License.Name)
		doc.LicenseURL = strings.TrimSpace(info.License.URL)
	}
	return doc
}

// MethodDocFor collects the per-operation description fields.
func MethodDocFor(op model.Operation) MethodDoc {
	return MethodDoc{
		Summary:     strings.TrimSpace(op.Summary),
		Description: strings.TrimSpace(op.Description),
		HTTPMethod:  strings.ToUpper(string(op.Method)),
		Path:        op.Path,
		OperationID: op.ID,
	}
}

// Lines renders the client documentation as comment-ready text lines:
// title, description, version, contact, license, and terms, separated
// by blank lines where the original sections are non-empty.
func (d ClientDoc) Lines(clientName string) []string {
	var lines []string

	if d.Title != "" {
		lines = append(lines, fmt.Sprintf("API client for %s.", d.Title))
	} else {
		lines = append(lines, fmt.Sprintf("Generated API client %s.", clientName))
	}

	if d.Description != "" {
		lines = append(lines, "", d.Description)
	}
	if d.Version != "" {
		lines = append(lines, "", "API version: "+d.Version)
	}
	if d.ContactEmail != "" {
		lines = append(lines, "Contact: "+d.ContactEmail)
	}
	if d.LicenseName != "" {
		if d.LicenseURL != "" {
			lines = append(lines, fmt.Sprintf("License: %s (%s)", d.LicenseName, d.LicenseURL))
		} else {
			lines = append(lines, "License: "+d.LicenseName)
		}
	}
	if d.TermsOfService != "" {
		lines = append(lines, "Terms of service: "+d.TermsOfService)
	}

	return lines
}

// Lines renders the method documentation: summary, description when it
// differs from the summary, then the HTTP method, path, and operation
// id.
func (d MethodDoc) Lines() []string {
	var lines []string

	if d.Summary != "" {
		lines = append(lines, d.Summary)
	}
	if d.Description != "" && d.Description != d.Summary {
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, d.Description)
	}

	if len(lines) > 0 {
		lines = append(lines, "")
	}
	lines = append(lines, fmt.Sprintf("%s %s", d.HTTPMethod, d.Path))
	if d.OperationID != "" {
		lines = append(lines, "Operation: "+d.OperationID)
	}

	return lines
}

// Text joins the rendered documentation lines into one block.
func (d MethodDoc) Text() string {
	return strings.Join(d.Lines(), "\n")
}
