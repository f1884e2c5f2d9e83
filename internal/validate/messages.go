// messages.go maps violation kinds to user-friendly messages with codes
// for support reference. When users encounter errors, they can quote the
// code to support staff for faster diagnosis.
//
// Codes:
//
//	VAL001 - Empty cell: a required field has no value
//	VAL002 - Wrong type: a cell does not match the column's expected type
//	VAL003 - Too many recipients: an address list exceeds the per-cell limit
//	VAL004 - Malformed address: an address fails the syntax check
//	VAL005 - Undeliverable group: a key group has no valid primary address
//	VAL006 - Missing column: the key column is absent from the sheet
//	ERR000 - Fallback for violation kinds this catalog does not know
package validate

import "fmt"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// messageCatalog maps each violation kind to its user message.
var messageCatalog = map[ViolationKind]UserMessage{
	KindEmptyCell: {
		Message: "Required field is empty",
		Action:  "Fill in every required column for the row",
		Code:    "VAL001",
	},
	KindWrongType: {
		Message: "Value does not match the column's expected type",
		Action:  "Check the column's allowed type and fix the cell",
		Code:    "VAL002",
	},
	KindEmailCount: {
		Message: "Too many addresses in one cell",
		Action:  "Keep each recipient cell within the address limit",
		Code:    "VAL003",
	},
	KindEmailFormat: {
		Message: "Malformed email address",
		Action:  "Use name@domain form for every address",
		Code:    "VAL004",
	},
	KindEmailGroup: {
		Message: "No deliverable address for this group",
		Action:  "Add at least one valid TO address to one row of the group",
		Code:    "VAL005",
	},
	KindMissingColumn: {
		Message: "Required column is missing from the sheet",
		Action:  "Check that the header row matches the template",
		Code:    "VAL006",
	},
}

// defaultMessage is returned when no catalog entry matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected validation problem occurred",
	Action:  "Please check the sheet or contact support",
	Code:    "ERR000",
}

// MessageFor returns the user message for a violation's kind, or the
// ERR000 fallback for unknown kinds.
func MessageFor(v Violation) UserMessage {
	if msg, ok := messageCatalog[v.Kind]; ok {
		return msg
	}
	return defaultMessage
}

// FormatUserMessage renders one violation for display:
// "<detail> - <Message> (Code: XXX). <Action>"
func FormatUserMessage(v Violation) string {
	msg := MessageFor(v)
	return fmt.Sprintf("%s - %s (Code: %s). %s", v.Error(), msg.Message, msg.Code, msg.Action)
}
