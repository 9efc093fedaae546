// Package contact stores inquiries sent through the public contact form.
package contact

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"

	"github.com/vaishalishah/portfolio/app/models"
	"github.com/vaishalishah/portfolio/app/repository"
	"github.com/vaishalishah/portfolio/internal/pkg/constants"
	"github.com/vaishalishah/portfolio/internal/pkg/notice"
	"github.com/vaishalishah/portfolio/internal/pkg/validation"
)

const (
	HomeURL = constants.HomeRoute

	msgSent          = "Thank you for your inquiry! Vaishali will contact you soon."
	msgFailed        = "There was an error sending your message. Please try again."
	msgCaptchaFailed = "Please complete the captcha and try again."
)

type ContactInput struct {
	Name         string `form:"name" label:"Name" validate:"required,notblank,max=100"`
	PhoneNumber  string `form:"phone_number" label:"Phone number" validate:"required,max=15,phone"`
	Message      string `form:"message" label:"Message" validate:"required,notblank,max=500"`
	CaptchaToken string `form:"h-captcha-response" validate:"-"`
}

func (in *ContactInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	in.Message = strings.TrimSpace(in.Message)
}

// Verifier checks a captcha token. A nil Verifier disables the check.
type Verifier interface {
	Verify(token string) (bool, error)
}

// Notifier is told about every stored inquiry.
type Notifier interface {
	NotifyInquiry(inquiry *models.ContactInquiry) error
}

type Service struct {
	inquiries repository.ContactInquiryRepository
	captcha   Verifier
	notifier  Notifier
	now       func() time.Time
}

func NewService(inquiries repository.ContactInquiryRepository, captcha Verifier) *Service {
	return &Service{inquiries: inquiries, captcha: captcha, now: time.Now}
}

// WithNotifier attaches n; a failed notification never fails the submission.
func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

// Submit validates and stores one inquiry.
func (s *Service) Submit(in ContactInput) notice.Outcome[ContactInput] {
	in.Normalize()

	if s.captcha != nil {
		ok, err := s.captcha.Verify(in.CaptchaToken)
		if err != nil || !ok {
			log.Warnf("Contact form captcha rejected: %v", err)
			return notice.Redisplay(in, validation.Form(msgCaptchaFailed))
		}
	}

	if errs := validation.Struct(in); errs != nil {
		return notice.Redisplay(in, errs)
	}

	inquiry := &models.ContactInquiry{
		Name:        in.Name,
		PhoneNumber: in.PhoneNumber,
		Message:     in.Message,
		CreatedDate: s.now(),
	}
	if err := s.inquiries.Create(inquiry); err != nil {
		log.Errorf("Error saving contact inquiry from %s: %v", in.Name, err)
		return notice.Redisplay(in, validation.Form(msgFailed))
	}

	log.Infof("New contact inquiry: %s - %s", inquiry.Name, inquiry.PhoneNumber)
	if s.notifier != nil {
		if err := s.notifier.NotifyInquiry(inquiry); err != nil {
			log.Errorf("Error sending notification for inquiry %d: %v", inquiry.ID, err)
		}
	}
	return notice.Redirect[ContactInput](HomeURL, notice.Success(msgSent))
}
