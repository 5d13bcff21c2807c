package dto

import (
	"time"

	"gorm.io/datatypes"

	"github.com/soundfolio/artist-portal/internal/models"
)

type UpdateDeliverableRequest struct {
	Status  *string `json:"status"`
	Comment *string `json:"comment"`
}

type PurchaseAddonRequest struct {
	AddonID string `json:"addonId"`
}

type PurchaseAddonResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	ProjectID string `json:"projectId"`
}

type SubscribeRequest struct {
	PlanID string `json:"planId"`
}

type CreateBookingRequest struct {
	SessionType string     `json:"sessionType"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	StartAt     *time.Time `json:"startAt"`
	EndAt       *time.Time `json:"endAt"`
}

type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID string `json:"bookingId"`
}

type UpdateBookingRequest struct {
	Status  *string    `json:"status"`
	StartAt *time.Time `json:"startAt"`
	EndAt   *time.Time `json:"endAt"`
	Notes   *string    `json:"notes"`
}

// ProjectSummary is a project row with deliverable counts for list views.
type ProjectSummary struct {
	models.Project
	TotalDeliverables     int `json:"totalDeliverables"`
	CompletedDeliverables int `json:"completedDeliverables"`
}

type ProjectsResponse struct {
	Success  bool             `json:"success"`
	Projects []ProjectSummary `json:"projects"`
}

// ProjectMessage is a chat message joined with its author.
type ProjectMessage struct {
	ID            string    `json:"id"`
	Content       string    `json:"content"`
	AttachmentURL *string   `json:"attachmentUrl"`
	CreatedAt     time.Time `json:"createdAt"`
	AuthorID      string    `json:"authorId"`
	AuthorName    string    `json:"authorName"`
	AuthorAvatar  *string   `json:"authorAvatar"`
	AuthorRole    string    `json:"authorRole"`
}

type ProjectDetail struct {
	models.Project
	Deliverables []models.Deliverable `json:"deliverables"`
	Messages     []ProjectMessage     `json:"messages"`
	Attachments  []models.Attachment  `json:"attachments"`
}

type ProjectDetailResponse struct {
	Success bool          `json:"success"`
	Project ProjectDetail `json:"project"`
}

// DeliverableRow is a deliverable joined with its project title for the
// cross-project list view.
type DeliverableRow struct {
	models.Deliverable
	ProjectTitle string `json:"projectTitle"`
}

type DeliverablesResponse struct {
	Success      bool             `json:"success"`
	Deliverables []DeliverableRow `json:"deliverables"`
}

// ActivityRow is an activity joined with its actor.
type ActivityRow struct {
	ID         string         `json:"id"`
	Type       string         `json:"type"`
	Action     string         `json:"action"`
	EntityType *string        `json:"entityType"`
	EntityID   *string        `json:"entityId"`
	Meta       datatypes.JSON `json:"meta"`
	CreatedAt  time.Time      `json:"createdAt"`
	UserID     *string        `json:"userId"`
	UserName   *string        `json:"userName"`
	UserAvatar *string        `json:"userAvatar"`
	UserRole   *string        `json:"userRole"`
}

type ActivitiesResponse struct {
	Success    bool          `json:"success"`
	Activities []ActivityRow `json:"activities"`
}

type PlansResponse struct {
	Success bool          `json:"success"`
	Plans   []models.Plan `json:"plans"`
}

type AddonsResponse struct {
	Success bool           `json:"success"`
	Addons  []models.Addon `json:"addons"`
}

type BookingsResponse struct {
	Success  bool             `json:"success"`
	Bookings []models.Booking `json:"bookings"`
}

type NotificationsResponse struct {
	Success       bool                  `json:"success"`
	Notifications []models.Notification `json:"notifications"`
}

type GoalsResponse struct {
	Success bool          `json:"success"`
	Goals   []models.Goal `json:"goals"`
}

type MetricsResponse struct {
	Success bool            `json:"success"`
	Metrics []models.Metric `json:"metrics"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
