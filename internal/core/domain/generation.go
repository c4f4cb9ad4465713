package domain

// Language is one entry of the supported-language table. OCRLang is the
// recognizer code handed to image extraction (e.g. "eng", "deu").
type Language struct {
	ID      string `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	OCRLang string `json:"ocr_lang" yaml:"ocr_lang"`
}

// PromptTemplate shapes the summary instruction.
type PromptTemplate struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Instruction string `json:"instruction" yaml:"instruction"`
}

// Role is the system persona the generation service writes as.
type Role struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	System string `json:"system" yaml:"system"`
}

// SummarizeRequest carries everything the summary stage sends upstream.
// Catalog ids are resolved to full entries before the request is built, so
// the generation client never sees raw identifiers.
type SummarizeRequest struct {
	Text      string
	Language  Language
	Template  PromptTemplate
	Role      Role
	MaxLength int
}

// RespondRequest carries the directed-response stage input. Direction may be
// empty; the stage tolerates absent user guidance.
type RespondRequest struct {
	Summary   string
	Direction string
	Language  Language
	Role      Role
}

// AnalyzeRequest carries the business-analysis stage input. Extra may be
// empty.
type AnalyzeRequest struct {
	Original string
	Summary  string
	Extra    string
	Language Language
}
