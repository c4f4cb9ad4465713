package domain

import (
	"errors"
	"strings"
)

// Forwarded state travels with the client between stages instead of a
// server-side session. Every field is untrusted input and is re-validated
// on each transition.

// SummaryState is what /summarise returns and /response receives back.
type SummaryState struct {
	Text       string `json:"summary"`
	LanguageID string `json:"lang"`
	RoleID     string `json:"role"`
}

func (s SummaryState) Validate() error {
	switch {
	case strings.TrimSpace(s.Text) == "":
		return WrapError(ErrInvalidInput, "validate summary state", errors.New("summary text is empty"))
	case strings.TrimSpace(s.LanguageID) == "":
		return WrapError(ErrInvalidInput, "validate summary state", errors.New("language id is missing"))
	case strings.TrimSpace(s.RoleID) == "":
		return WrapError(ErrInvalidInput, "validate summary state", errors.New("role id is missing"))
	}
	return nil
}

// ResponseState is what /response returns and /analysis receives back.
// Original is the normalized summary text the analysis stage treats as the
// source document.
type ResponseState struct {
	Original   string `json:"original"`
	Summary    string `json:"summary"`
	Text       string `json:"response"`
	LanguageID string `json:"lang"`
}

func (s ResponseState) Validate() error {
	switch {
	case strings.TrimSpace(s.Original) == "":
		return WrapError(ErrInvalidInput, "validate response state", errors.New("original text is empty"))
	case strings.TrimSpace(s.Summary) == "":
		return WrapError(ErrInvalidInput, "validate response state", errors.New("summary text is empty"))
	case strings.TrimSpace(s.LanguageID) == "":
		return WrapError(ErrInvalidInput, "validate response state", errors.New("language id is missing"))
	}
	return nil
}

// AnalysisState is the terminal stage output; nothing is forwarded past it.
type AnalysisState struct {
	Text string `json:"analysis"`
}
