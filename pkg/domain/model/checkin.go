package model

import (
	"encoding/json"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/pulse/pkg/domain/types"
)

// CheckinRecord represents one user's status update message.
// Identity is the message ID; immutable once constructed.
type CheckinRecord struct {
	messageID string
	userID    string
	userName  string
	timestamp time.Time
	text      string
	quality   types.QualityLabel
}

// NewCheckinRecord creates a new CheckinRecord. The timestamp is normalized to UTC.
// The quality label stays empty until the classifier derives it.
func NewCheckinRecord(messageID, userID, userName string, timestamp time.Time, text string) CheckinRecord {
	return CheckinRecord{
		messageID: messageID,
		userID:    userID,
		userName:  userName,
		timestamp: timestamp.UTC(),
		text:      text,
	}
}

// WithQuality returns a copy of the record tagged with the given quality label.
// A label already present on the record is never overwritten.
func (c CheckinRecord) WithQuality(label types.QualityLabel) CheckinRecord {
	if c.quality.IsValid() {
		return c
	}
	c.quality = label
	return c
}

func (c CheckinRecord) MessageID() string {
	return c.messageID
}

func (c CheckinRecord) UserID() string {
	return c.userID
}

func (c CheckinRecord) UserName() string {
	return c.userName
}

func (c CheckinRecord) Timestamp() time.Time {
	return c.timestamp
}

func (c CheckinRecord) Text() string {
	return c.text
}

// Quality returns the quality label carried by the record. It is empty when the
// upstream source did not tag the record; callers derive it on demand.
func (c CheckinRecord) Quality() types.QualityLabel {
	return c.quality
}

type checkinJSON struct {
	MessageID string             `json:"message_id"`
	UserID    string             `json:"user_id"`
	UserName  string             `json:"user_name"`
	Timestamp time.Time          `json:"timestamp"`
	Content   string             `json:"message_content"`
	Quality   types.QualityLabel `json:"quality,omitempty"`
}

// MarshalJSON implements json.Marshaler
func (c CheckinRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(checkinJSON{
		MessageID: c.messageID,
		UserID:    c.userID,
		UserName:  c.userName,
		Timestamp: c.timestamp,
		Content:   c.text,
		Quality:   c.quality,
	})
}

// UnmarshalJSON implements json.Unmarshaler
func (c *CheckinRecord) UnmarshalJSON(data []byte) error {
	var raw checkinJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return goerr.Wrap(err, "failed to unmarshal check-in record")
	}
	if raw.MessageID == "" {
		return goerr.New("check-in record requires message_id")
	}
	if raw.UserID == "" {
		return goerr.New("check-in record requires user_id", goerr.V("message_id", raw.MessageID))
	}

	*c = NewCheckinRecord(raw.MessageID, raw.UserID, raw.UserName, raw.Timestamp, raw.Content)
	if raw.Quality.IsValid() {
		c.quality = raw.Quality
	}
	return nil
}
