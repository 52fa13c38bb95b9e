package service

import (
	"context"
	"fmt"
	"html"
	"log"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"
)

// EmailService sends parent notifications via Amazon SES
type EmailService struct {
	client    *sesv2.Client
	fromEmail string
	fromName  string
	enabled   bool
	debug     bool
}

// NewEmailService creates a new email service. If fromEmail is empty
// the service is created disabled and every send becomes a no-op.
func NewEmailService(ctx context.Context, awsRegion, fromEmail, fromName string, debug bool) (*EmailService, error) {
	if fromEmail == "" {
		log.Println("Email service disabled: SES_FROM_EMAIL not configured")
		return &EmailService{enabled: false, debug: debug}, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(awsRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	log.Printf("Email service enabled: from=%s, region=%s", fromEmail, awsRegion)

	return &EmailService{
		client:    sesv2.NewFromConfig(cfg),
		fromEmail: fromEmail,
		fromName:  fromName,
		enabled:   true,
		debug:     debug,
	}, nil
}

// IsEnabled returns whether the email service is enabled
func (s *EmailService) IsEnabled() bool {
	return s.enabled
}

// SendUnlockNotification tells a parent which games their child can now play
func (s *EmailService) SendUnlockNotification(ctx context.Context, toEmail, childName string, gameTitles []string) error {
	if !s.enabled {
		log.Printf("Skipping email send (service disabled): unlock notification to %s", toEmail)
		return nil
	}
	if s.debug {
		log.Printf("[DEBUG] SendUnlockNotification: to=%s, child=%s, games=%d", toEmail, childName, len(gameTitles))
	}

	subject := fmt.Sprintf("%s has new games to play!", childName)
	htmlBody := buildUnlockEmailHTML(childName, gameTitles)
	textBody := fmt.Sprintf("%s can now play: %s", childName, strings.Join(gameTitles, ", "))

	return s.send(ctx, toEmail, subject, htmlBody, textBody)
}

// buildUnlockEmailHTML renders the unlock notification body. Names and
// titles are user-entered, so they are escaped before interpolation.
func buildUnlockEmailHTML(childName string, gameTitles []string) string {
	var items strings.Builder
	for _, title := range gameTitles {
		items.WriteString("<li>" + html.EscapeString(title) + "</li>")
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; color: #333;">
	<h2>New games unlocked</h2>
	<p>%s can now play the following games on Play, Learn &amp; Protect:</p>
	<ul>%s</ul>
	<p>You can review your child's games any time from the parent dashboard.</p>
</body>
</html>`, html.EscapeString(childName), items.String())
}

func (s *EmailService) send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)),
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: aws.String(subject)},
				Body: &types.Body{
					Html: &types.Content{Data: aws.String(htmlBody)},
					Text: &types.Content{Data: aws.String(textBody)},
				},
			},
		},
	}

	if _, err := s.client.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Printf("Email sent to %s: %s", toEmail, subject)
	return nil
}
