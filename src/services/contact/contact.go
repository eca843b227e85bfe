// Package contact holds the business's contact channels, the service
// catalog, and the service-request flow that forwards an enquiry by email.
// Opening the composed URLs is left to the presentation layer.
package contact

import (
	"fmt"
	"net/url"

	"hexchat/src/models"
	"hexchat/src/services/notify"
)

// Channel is one way to reach the business.
type Channel struct {
	Type  string
	Value string
	URL   string
}

// Channels lists the contact options in display order.
var Channels = []Channel{
	{Type: "Email", Value: "cashexerbusiness@gmail.com", URL: "mailto:cashexerbusiness@gmail.com"},
	{Type: "LinkedIn", Value: "HEX HUSTLERS [PTY] LTD", URL: "https://www.linkedin.com/company/hex-hustlers/?viewAsMember=true"},
	{Type: "Phone", Value: "+27 71 400 8892", URL: "tel:+27714008892"},
}

// Offering is one entry in the service catalog.
type Offering struct {
	Category    string
	Title       string
	Description string
	Price       string
}

// Catalog is the service catalog shown on the services screen.
var Catalog = []Offering{
	{Category: "Development", Title: "Custom Web Applications", Description: "Full-stack web solutions built with modern frameworks like React, Next.js, and Node.js. From concept to deployment.", Price: "From R15,000 | $800 - $2,500"},
	{Category: "Development", Title: "Mobile App Development", Description: "Native iOS/Android apps and cross-platform solutions using React Native and Flutter for maximum reach.", Price: "From R25,000 | $1,200 - $4,200"},
	{Category: "Development", Title: "E-commerce Solutions", Description: "Complete online stores with inventory management, payment gateways, and customer analytics for business growth.", Price: "From R20,000 | $1,000 - $3,500"},
	{Category: "Development", Title: "API Development & Integration", Description: "RESTful APIs, GraphQL endpoints, and third-party integrations that connect your systems seamlessly.", Price: "From R8,000 | $400 - $1,400"},
	{Category: "Design & Strategy", Title: "UI/UX Design & Prototyping", Description: "User-centered design that converts visitors into customers through intuitive interfaces and seamless experiences.", Price: "From R12,000 | $600 - $2,000"},
	{Category: "Design & Strategy", Title: "Digital Brand Strategy", Description: "Complete brand identity and digital strategy to establish your unique market position and drive growth.", Price: "From R10,000 | $500 - $1,700"},
	{Category: "Infrastructure", Title: "Cloud Infrastructure & DevOps", Description: "Scalable cloud deployment, CI/CD pipelines, and infrastructure automation for reliable, high-performance applications.", Price: "From R6,000 | $300 - $1,000"},
	{Category: "Infrastructure", Title: "Cybersecurity & Compliance", Description: "Comprehensive security assessments, implementation of protective measures, and compliance with industry standards.", Price: "From R15,000 | $700 - $2,500"},
	{Category: "Infrastructure", Title: "AI & Automation Solutions", Description: "Custom AI implementations, chatbots, and process automation to streamline operations and enhance user experience.", Price: "From R18,000 | $900 - $3,000"},
	{Category: "Infrastructure", Title: "Ongoing Support & Maintenance", Description: "Continuous updates, security patches, performance optimization, and technical support to keep your systems running smoothly.", Price: "From R2,500/month | $150 - $500/mo"},
}

// ServiceRequest is an enquiry about one of the offerings.
type ServiceRequest struct {
	Name    string
	Email   string
	Service string
	Details string
}

// Validate checks the request for presence.
func (r ServiceRequest) Validate() error {
	if r.Name == "" || r.Email == "" || r.Service == "" {
		return &models.ValidationError{Message: "please fill in your name, email and the service you need"}
	}
	return nil
}

// Body builds the enquiry text sent to the business.
func (r ServiceRequest) Body() string {
	return fmt.Sprintf("SERVICE REQUEST\n\nName: %s\nEmail: %s\nService: %s\n\n%s", r.Name, r.Email, r.Service, r.Details)
}

// Service drives the service-request flow.
type Service struct {
	feed *notify.Center
}

// NewService wires the contact flow to the notification feed.
func NewService(feed *notify.Center) *Service {
	return &Service{feed: feed}
}

// SubmitRequest validates an enquiry and returns the mailto URL that forwards
// it to the business email. A service-contact notification is recorded.
func (s *Service) SubmitRequest(r ServiceRequest) (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	mailto := fmt.Sprintf("mailto:%s?subject=%s&body=%s",
		"cashexerbusiness@gmail.com",
		url.QueryEscape("Service Request: "+r.Service),
		url.QueryEscape(r.Body()))
	s.feed.ServiceContact()
	return mailto, nil
}
