package services

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"hostel-management-api/config"
	"hostel-management-api/models"
)

const mailSubject = "Hostel Complaint Notification"

// Publisher delivers a notification payload to the live connections of a
// user. Swappable so the workflow layer never touches the transport.
type Publisher interface {
	Publish(userID string, n *models.Notification)
}

// Notifier runs the post-write side effects of the complaint and feedback
// workflows: persist a notification record, push it to live connections,
// and send a best-effort email. Every leg is fire-and-forget; a failure is
// logged and never reaches the caller, since the primary record write is
// the operation's success criterion.
type Notifier struct {
	db        *gorm.DB
	publisher Publisher
	sendMail  func(to []string, subject, body string) error
}

func NewNotifier(db *gorm.DB, publisher Publisher) *Notifier {
	return &Notifier{
		db:        db,
		publisher: publisher,
		sendMail:  config.SendMail,
	}
}

func (n *Notifier) ComplaintSubmitted(c *models.Complaint) {
	n.dispatch(c.SubmittedBy, c.MatricNo,
		"Your complaint has been submitted.",
		models.NotificationComplaintSubmit, c.ID)
}

func (n *Notifier) ComplaintUpdated(c *models.Complaint) {
	comment := ""
	if c.Comment != nil {
		comment = *c.Comment
	}
	msg := fmt.Sprintf("Your complaint has been updated to %q with a comment %q", c.Status, comment)
	n.dispatch(c.SubmittedBy, c.MatricNo, msg, models.NotificationComplaintUpdate, c.ID)
}

func (n *Notifier) FeedbackSubmitted(f *models.Feedback) {
	n.dispatch(f.SubmittedBy, f.SubmittedBy,
		"Your feedback has been submitted.",
		models.NotificationFeedbackSubmit, f.ID)
}

func (n *Notifier) FeedbackReplied(f *models.Feedback) {
	n.dispatch(f.SubmittedBy, f.SubmittedBy,
		"Your feedback has been replied.",
		models.NotificationFeedbackReply, f.ID)
}

func (n *Notifier) dispatch(userID, recipientKey, message, typ, refID string) {
	n.Notify(userID, message, typ, refID)
	n.MailTo(recipientKey, message)
}

// Notify persists exactly one notification record for the event and
// publishes it to the user's live connections.
func (n *Notifier) Notify(userID, message, typ, refID string) {
	rec := models.Notification{
		ID:       uuid.NewString(),
		UserID:   userID,
		Message:  message,
		Type:     typ,
		RefID:    refID,
		IsRead:   false,
		CreateAt: time.Now(),
	}

	if err := n.db.Create(&rec).Error; err != nil {
		log.Printf("notifier: failed to persist %s notification for user %s: %v", typ, userID, err)
		return
	}

	if n.publisher != nil {
		n.publisher.Publish(userID, &rec)
	}
}

// MailTo resolves the recipient's email and sends the message. The key is
// a matriculation number or a user id; the two are used interchangeably.
// An unresolved recipient is logged and skipped, never an error.
func (n *Notifier) MailTo(recipientKey, message string) {
	var user models.User
	if err := n.db.Where("matric_no = ? OR user_id = ?", recipientKey, recipientKey).
		First(&user).Error; err != nil {
		log.Printf("notifier: mail recipient %s not found: %v", recipientKey, err)
		return
	}
	if user.Email == "" {
		log.Printf("notifier: no email on record for %s", recipientKey)
		return
	}

	// Only the SMTP round-trip leaves the request goroutine.
	go func(email string) {
		if err := n.sendMail([]string{email}, mailSubject, message); err != nil {
			log.Printf("notifier: email to %s failed: %v", email, err)
		}
	}(user.Email)
}
