package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/alexzlotnikov/pitchdeeper/internal/models"
)

func deckFile(name, mimeType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if mimeType != "" {
		header.Set("Content-Type", mimeType)
	}
	return &multipart.FileHeader{
		Filename: name,
		Header:   header,
		Size:     size,
	}
}

func TestValidateFileType(t *testing.T) {
	validator := NewUploadValidator(MaxUploadBytes)

	testCases := []struct {
		name     string
		filename string
		mimeType string
		wantCode string
	}{
		{"pdf accepted", "deck.pdf", "application/pdf", ""},
		{"ppt accepted", "deck.ppt", "application/vnd.ms-powerpoint", ""},
		{"pptx accepted", "deck.pptx", "application/vnd.openxmlformats-officedocument.presentationml.presentation", ""},
		{"uppercase extension accepted", "DECK.PDF", "application/pdf", ""},
		{"mixed case extension accepted", "deck.PpTx", "", ""},
		{"txt rejected", "notes.txt", "text/plain", models.CodeInvalidFileType},
		{"docx rejected", "deck.docx", "application/msword", models.CodeInvalidFileType},
		{"dotless non-type name rejected", "deck", "application/pdf", models.CodeInvalidFileType},
		{"dotless filename is its own segment", "pdf", "", ""},
		{"dotless segment is case-insensitive", "PPTX", "", ""},
		{"trailing dot leaves empty segment", "deck.", "application/pdf", models.CodeInvalidFileType},
		{"declared MIME cannot rescue bad extension", "notes.txt", "application/pdf", models.CodeInvalidFileType},
		{"declared MIME cannot break good extension", "deck.pdf", "text/plain", ""},
		{"extension taken from trailing segment", "deck.pdf.exe", "application/pdf", models.CodeInvalidFileType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, verr := validator.Validate("key", deckFile(tc.filename, tc.mimeType, 1024))
			if tc.wantCode == "" {
				if verr != nil {
					t.Errorf("expected acceptance, got %s: %s", verr.Code, verr.Message)
				}
				return
			}
			if verr == nil {
				t.Fatalf("expected rejection %s, got acceptance", tc.wantCode)
			}
			if verr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, verr.Code)
			}
			if verr.Status != 400 {
				t.Errorf("expected status 400, got %d", verr.Status)
			}
		})
	}
}

func TestValidateSizeBoundary(t *testing.T) {
	validator := NewUploadValidator(MaxUploadBytes)

	testCases := []struct {
		name     string
		size     int64
		wantCode string
	}{
		{"small file accepted", 1024, ""},
		{"exactly at limit accepted", 52428800, ""},
		{"one byte over rejected", 52428801, models.CodeFileTooLarge},
		{"60MB rejected", 60 * 1024 * 1024, models.CodeFileTooLarge},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, verr := validator.Validate("key", deckFile("deck.pdf", "application/pdf", tc.size))
			if tc.wantCode == "" {
				if verr != nil {
					t.Errorf("expected acceptance, got %s", verr.Code)
				}
				return
			}
			if verr == nil || verr.Code != tc.wantCode {
				t.Errorf("expected %s, got %v", tc.wantCode, verr)
			}
		})
	}
}

// The check sequence is fixed: credential, file presence, extension, size.
// The first failing check must win even when later checks would also fail.
func TestValidateCheckOrdering(t *testing.T) {
	validator := NewUploadValidator(MaxUploadBytes)

	testCases := []struct {
		name     string
		apiKey   string
		file     *multipart.FileHeader
		wantCode string
	}{
		{"missing key beats missing file", "", nil, models.CodeAPIKeyMissing},
		{"missing key beats bad extension", "", deckFile("notes.txt", "", 1024), models.CodeAPIKeyMissing},
		{"missing key beats oversize", "", deckFile("deck.pdf", "", 99999999999), models.CodeAPIKeyMissing},
		{"missing file beats nothing else", "key", nil, models.CodeNoFile},
		{"bad extension beats oversize", "key", deckFile("huge.txt", "", 99999999999), models.CodeInvalidFileType},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, verr := validator.Validate(tc.apiKey, tc.file)
			if verr == nil {
				t.Fatal("expected rejection, got acceptance")
			}
			if verr.Code != tc.wantCode {
				t.Errorf("expected code %s, got %s", tc.wantCode, verr.Code)
			}
		})
	}
}

func TestValidateStatusCodes(t *testing.T) {
	validator := NewUploadValidator(MaxUploadBytes)

	if _, verr := validator.Validate("", nil); verr == nil || verr.Status != 500 {
		t.Errorf("missing credential should be a 500, got %v", verr)
	}
	if _, verr := validator.Validate("key", nil); verr == nil || verr.Status != 400 {
		t.Errorf("missing file should be a 400, got %v", verr)
	}
}

func TestValidateAcceptedMetadata(t *testing.T) {
	validator := NewUploadValidator(MaxUploadBytes)

	upload, verr := validator.Validate("key", deckFile("deck.pdf", "application/pdf", 3145728))
	if verr != nil {
		t.Fatalf("expected acceptance, got %s", verr.Code)
	}
	if upload.Name != "deck.pdf" {
		t.Errorf("expected name deck.pdf, got %s", upload.Name)
	}
	if upload.MimeType != "application/pdf" {
		t.Errorf("expected MIME application/pdf, got %s", upload.MimeType)
	}
	if upload.SizeBytes != 3145728 {
		t.Errorf("expected size 3145728, got %d", upload.SizeBytes)
	}
}
