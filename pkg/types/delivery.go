// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DeliveryStatus is the outcome of one attempt to email a report.
type DeliveryStatus string

const (
	DeliverySent   DeliveryStatus = "sent"
	DeliveryFailed DeliveryStatus = "failed"
)

// Delivery records one send attempt. It describes the attempt, not the
// meeting content.
type Delivery struct {
	// ID is a random UUID assigned when the attempt is recorded.
	ID string `json:"id" yaml:"id"`

	// LogFile is the meeting log the report was built from.
	LogFile string `json:"log_file" yaml:"log_file"`

	Recipient string `json:"recipient" yaml:"recipient"`
	Subject   string `json:"subject" yaml:"subject"`

	// Topics is the number of QA pairs in the report.
	Topics int `json:"topics" yaml:"topics"`

	Status DeliveryStatus `json:"status" yaml:"status"`

	// Error holds the failure message. Empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
