package constants

import "strings"

const PDF = "PDF"

// RenamePrefix is prepended to medical records renamed from extracted fields.
const RenamePrefix = "emo"

// ReportDividerWidth is the number of dashes closing every report entry.
const ReportDividerWidth = 40

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsPDFExt reports whether ext (with or without dot, any case) is a PDF extension.
func IsPDFExt(ext string) bool {
	return NormalizeExt(ext) == "pdf"
}
