package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"devconnect/internal/models"
	"devconnect/internal/repository"
)

// ProfileService implements create-or-update profile semantics and the
// embedded education/experience list operations.
type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// UpsertProfileInput carries a create-or-update profile request. Empty
// fields are treated as absent and keep their prior values on update.
type UpsertProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Status         string `json:"status"`
	Skills         string `json:"skills"`
	Bio            string `json:"bio"`
	GithubUsername string `json:"githubusername"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

// EducationInput carries an add-education request.
type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// ExperienceInput carries an add-experience request.
type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

// NewProfileService returns a new ProfileService.
func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, userRepo: userRepo}
}

// GetMine returns the authenticated user's profile.
func (s *ProfileService) GetMine(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("There is no profile for this user")
	}
	return profile, nil
}

// GetAll returns every profile, user name and avatar populated.
func (s *ProfileService) GetAll(ctx context.Context) ([]models.Profile, error) {
	return s.profileRepo.List(ctx)
}

// GetByUser returns the profile owned by the given user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uint) (*models.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, models.NewNotFoundError("Profile not found")
	}
	return profile, nil
}

// splitSkills turns a comma-separated skills string into a trimmed sequence.
// Empty tokens from trailing or doubled commas are dropped.
func splitSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Upsert creates the user's profile or applies a partial update to it.
// Only fields present in the input overwrite stored values.
func (s *ProfileService) Upsert(ctx context.Context, userID uint, in UpsertProfileInput) (*models.Profile, error) {
	var fields []models.FieldError
	if in.Status == "" {
		fields = append(fields, models.FieldError{Msg: "Status is required", Param: "status"})
	}
	if in.Skills == "" {
		fields = append(fields, models.FieldError{Msg: "Skills is required", Param: "skills"})
	}
	if len(fields) > 0 {
		return nil, models.NewValidationError(fields...)
	}

	skills := splitSkills(in.Skills)

	existing, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		profile := &models.Profile{
			UserID:         userID,
			Company:        in.Company,
			Website:        in.Website,
			Location:       in.Location,
			Status:         in.Status,
			Skills:         skills,
			Bio:            in.Bio,
			GithubUsername: in.GithubUsername,
			Social: models.Social{
				Youtube:   in.Youtube,
				Twitter:   in.Twitter,
				Facebook:  in.Facebook,
				Linkedin:  in.Linkedin,
				Instagram: in.Instagram,
			},
		}
		if err := s.profileRepo.Create(ctx, profile); err != nil {
			return nil, err
		}
		return s.GetMine(ctx, userID)
	}

	// Partial merge: absent input fields keep their stored values.
	// Map updates bypass GORM serializers, so the skills column gets its
	// encoded form.
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	updates := map[string]interface{}{
		"status": in.Status,
		"skills": string(skillsJSON),
	}
	if in.Company != "" {
		updates["company"] = in.Company
	}
	if in.Website != "" {
		updates["website"] = in.Website
	}
	if in.Location != "" {
		updates["location"] = in.Location
	}
	if in.Bio != "" {
		updates["bio"] = in.Bio
	}
	if in.GithubUsername != "" {
		updates["github_username"] = in.GithubUsername
	}
	if in.Youtube != "" {
		updates["social_youtube"] = in.Youtube
	}
	if in.Twitter != "" {
		updates["social_twitter"] = in.Twitter
	}
	if in.Facebook != "" {
		updates["social_facebook"] = in.Facebook
	}
	if in.Linkedin != "" {
		updates["social_linkedin"] = in.Linkedin
	}
	if in.Instagram != "" {
		updates["social_instagram"] = in.Instagram
	}

	if err := s.profileRepo.UpdateFields(ctx, existing.ID, updates); err != nil {
		return nil, err
	}
	return s.GetMine(ctx, userID)
}

// parseEntryDate accepts the date formats clients send for from/to fields.
func parseEntryDate(value string) (time.Time, error) {
	layouts := []string{"2006-01-02", time.RFC3339}
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// AddEducation validates and inserts a new education entry. The entry gets a
// fresh stable identifier and sorts to the front of the list.
func (s *ProfileService) AddEducation(ctx context.Context, userID uint, in EducationInput) (*models.Profile, error) {
	var fields []models.FieldError
	if in.School == "" {
		fields = append(fields, models.FieldError{Msg: "School is required", Param: "school"})
	}
	if in.Degree == "" {
		fields = append(fields, models.FieldError{Msg: "Degree is required", Param: "degree"})
	}
	if in.FieldOfStudy == "" {
		fields = append(fields, models.FieldError{Msg: "Field of study is required", Param: "fieldofstudy"})
	}
	if in.From == "" {
		fields = append(fields, models.FieldError{Msg: "From date is required", Param: "from"})
	}
	if len(fields) > 0 {
		return nil, models.NewValidationError(fields...)
	}

	from, err := parseEntryDate(in.From)
	if err != nil {
		return nil, models.NewValidationError(models.FieldError{Msg: "From date is invalid", Param: "from"})
	}
	var to *time.Time
	if in.To != "" {
		parsed, err := parseEntryDate(in.To)
		if err != nil {
			return nil, models.NewValidationError(models.FieldError{Msg: "To date is invalid", Param: "to"})
		}
		to = &parsed
	}

	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	edu := &models.Education{
		ProfileID:    profile.ID,
		School:       in.School,
		Degree:       in.Degree,
		FieldOfStudy: in.FieldOfStudy,
		From:         from,
		To:           to,
		Current:      in.Current,
		Description:  in.Description,
	}
	if err := s.profileRepo.AddEducation(ctx, edu); err != nil {
		return nil, err
	}
	return s.GetMine(ctx, userID)
}

// RemoveEducation removes exactly the entry matched by ID. A missing entry
// is a named failure, never a positional removal.
func (s *ProfileService) RemoveEducation(ctx context.Context, userID, eduID uint) (*models.Profile, error) {
	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.profileRepo.RemoveEducation(ctx, profile.ID, eduID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("Education entry not found")
	}
	return s.GetMine(ctx, userID)
}

// AddExperience validates and inserts a new experience entry.
func (s *ProfileService) AddExperience(ctx context.Context, userID uint, in ExperienceInput) (*models.Profile, error) {
	var fields []models.FieldError
	if in.Title == "" {
		fields = append(fields, models.FieldError{Msg: "Title is required", Param: "title"})
	}
	if in.Company == "" {
		fields = append(fields, models.FieldError{Msg: "Company is required", Param: "company"})
	}
	if in.From == "" {
		fields = append(fields, models.FieldError{Msg: "From date is required", Param: "from"})
	}
	if len(fields) > 0 {
		return nil, models.NewValidationError(fields...)
	}

	from, err := parseEntryDate(in.From)
	if err != nil {
		return nil, models.NewValidationError(models.FieldError{Msg: "From date is invalid", Param: "from"})
	}
	var to *time.Time
	if in.To != "" {
		parsed, err := parseEntryDate(in.To)
		if err != nil {
			return nil, models.NewValidationError(models.FieldError{Msg: "To date is invalid", Param: "to"})
		}
		to = &parsed
	}

	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	exp := &models.Experience{
		ProfileID:   profile.ID,
		Title:       in.Title,
		Company:     in.Company,
		Location:    in.Location,
		From:        from,
		To:          to,
		Current:     in.Current,
		Description: in.Description,
	}
	if err := s.profileRepo.AddExperience(ctx, exp); err != nil {
		return nil, err
	}
	return s.GetMine(ctx, userID)
}

// RemoveExperience removes exactly the entry matched by ID.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID, expID uint) (*models.Profile, error) {
	profile, err := s.GetMine(ctx, userID)
	if err != nil {
		return nil, err
	}

	removed, err := s.profileRepo.RemoveExperience(ctx, profile.ID, expID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewNotFoundError("Experience entry not found")
	}
	return s.GetMine(ctx, userID)
}
