package validator

import (
	"fmt"
	"strings"

	"github.com/lumeapp/sync-client/internal/model"
)

const (
	maxContentLength  = 5000
	maxAttachmentSize = 50 << 20 // 50MB
)

var allowedAttachmentMimes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/gif":       {},
	"image/webp":      {},
	"video/mp4":       {},
	"video/quicktime": {},
}

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateMessage rejects a send before anything is emitted. An empty send
// (no text, no attachments) is not an error for callers that treat it as a
// no-op; they check emptiness themselves via IsEmptyMessage.
func (v *Validator) ValidateMessage(content string, attachments []model.Attachment) error {
	if IsEmptyMessage(content, attachments) {
		return fmt.Errorf("message is empty")
	}

	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	for _, att := range attachments {
		if err := v.ValidateAttachment(att); err != nil {
			return err
		}
	}

	return nil
}

func IsEmptyMessage(content string, attachments []model.Attachment) bool {
	return strings.TrimSpace(content) == "" && len(attachments) == 0
}

func (v *Validator) ValidateAttachment(att model.Attachment) error {
	if _, ok := allowedAttachmentMimes[att.Mime]; !ok {
		return fmt.Errorf("attachment type '%s' is not supported", att.Mime)
	}

	if att.Size > maxAttachmentSize {
		return fmt.Errorf("attachment '%s' exceeds maximum size of 50MB", att.Name)
	}

	return nil
}

func (v *Validator) ValidateComment(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("comment cannot be empty")
	}

	if len([]rune(content)) > maxContentLength {
		return fmt.Errorf("comment exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateReview(review *model.SupportReview) error {
	if review.Rating < 1 || review.Rating > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", review.Rating)
	}

	return nil
}

func (v *Validator) ValidateAnalyticsRange(dateRange string) error {
	for _, r := range model.AnalyticsRanges {
		if r == dateRange {
			return nil
		}
	}

	return fmt.Errorf("range '%s' is not supported", dateRange)
}
