package services

import (
	"fmt"

	"codelance_backend/internal/models"
	"codelance_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory repository stubs. The db handle is ignored; services under
// test are exercised with a nil *gorm.DB, and transactional inner logic
// is tested through the unexported helpers that take the tx directly.

type stubUserRepo struct {
	users map[string]*models.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*models.User)}
}

func (r *stubUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ *gorm.DB, username string) (*models.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *stubUserRepo) Create(_ *gorm.DB, user *models.User) error {
	for _, u := range r.users {
		if u.Username == user.Username {
			return repositories.ErrUsernameTaken
		}
		if u.Email == user.Email {
			return repositories.ErrEmailTaken
		}
	}
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(r.users)+1)
	}
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *stubUserRepo) Delete(_ *gorm.DB, userID string) error {
	delete(r.users, userID)
	return nil
}

type stubProfileRepo struct {
	profiles map[string]*models.Profile
}

func newStubProfileRepo() *stubProfileRepo {
	return &stubProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (r *stubProfileRepo) Create(_ *gorm.DB, profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = fmt.Sprintf("profile-%d", len(r.profiles)+1)
	}
	r.profiles[profile.ID] = profile
	return nil
}

func (r *stubProfileRepo) FindByID(_ *gorm.DB, id string) (*models.Profile, error) {
	if p, ok := r.profiles[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProfileRepo) FindByUserID(_ *gorm.DB, userID string) (*models.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProfileRepo) FindAll(_ *gorm.DB, _, _ int) ([]models.Profile, error) {
	out := make([]models.Profile, 0, len(r.profiles))
	for _, p := range r.profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProfileRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(r.profiles)), nil
}

func (r *stubProfileRepo) CountByRole(_ *gorm.DB, role models.UserRole) (int64, error) {
	var n int64
	for _, p := range r.profiles {
		if p.Role == role {
			n++
		}
	}
	return n, nil
}

func (r *stubProfileRepo) Update(_ *gorm.DB, profile *models.Profile) error {
	r.profiles[profile.ID] = profile
	return nil
}

func (r *stubProfileRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.profiles, id)
	return nil
}

type stubRefreshTokenRepo struct {
	tokens map[string]*models.RefreshToken
}

func newStubRefreshTokenRepo() *stubRefreshTokenRepo {
	return &stubRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *stubRefreshTokenRepo) Create(_ *gorm.DB, token *models.RefreshToken) error {
	r.tokens[token.Token] = token
	return nil
}

func (r *stubRefreshTokenRepo) FindByToken(_ *gorm.DB, token string) (*models.RefreshToken, error) {
	if t, ok := r.tokens[token]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubRefreshTokenRepo) Delete(_ *gorm.DB, token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *stubRefreshTokenRepo) DeleteForUser(_ *gorm.DB, userID string) error {
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *stubRefreshTokenRepo) DeleteExpired(_ *gorm.DB) error { return nil }

type stubProjectRepo struct {
	projects map[string]*models.Project
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{projects: make(map[string]*models.Project)}
}

func (r *stubProjectRepo) Create(_ *gorm.DB, project *models.Project) error {
	if project.ID == "" {
		project.ID = fmt.Sprintf("project-%d", len(r.projects)+1)
	}
	r.projects[project.ID] = project
	return nil
}

func (r *stubProjectRepo) FindByID(_ *gorm.DB, id string) (*models.Project, error) {
	if p, ok := r.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubProjectRepo) FindAll(_ *gorm.DB) ([]models.Project, error) {
	out := make([]models.Project, 0, len(r.projects))
	for _, p := range r.projects {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProjectRepo) FindByClient(_ *gorm.DB, clientID string) ([]models.Project, error) {
	out := make([]models.Project, 0)
	for _, p := range r.projects {
		if p.ClientID == clientID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) FindVisibleToDeveloper(_ *gorm.DB, developerID string) ([]models.Project, error) {
	out := make([]models.Project, 0)
	for _, p := range r.projects {
		if p.Status == models.ProjectStatusInProgress {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) Update(_ *gorm.DB, project *models.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *stubProjectRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.projects, id)
	return nil
}

func (r *stubProjectRepo) CountByStatus(_ *gorm.DB, status models.ProjectStatus) (int64, error) {
	var n int64
	for _, p := range r.projects {
		if p.Status == status {
			n++
		}
	}
	return n, nil
}

type stubTaskRepo struct {
	tasks map[string]*models.Task
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[string]*models.Task)}
}

func (r *stubTaskRepo) Create(_ *gorm.DB, task *models.Task) error {
	if task.ID == "" {
		task.ID = fmt.Sprintf("task-%d", len(r.tasks)+1)
	}
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) FindByID(_ *gorm.DB, id string) (*models.Task, error) {
	if t, ok := r.tasks[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubTaskRepo) FindAll(_ *gorm.DB) ([]models.Task, error) {
	out := make([]models.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTaskRepo) FindByAssignee(_ *gorm.DB, userID string) ([]models.Task, error) {
	out := make([]models.Task, 0)
	for _, t := range r.tasks {
		if t.AssignedTo != nil && *t.AssignedTo == userID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) FindByProjectClient(_ *gorm.DB, clientID string) ([]models.Task, error) {
	out := make([]models.Task, 0)
	for _, t := range r.tasks {
		if t.Project != nil && t.Project.ClientID == clientID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) ExistsForProjectAndAssignee(_ *gorm.DB, projectID, userID string) (bool, error) {
	for _, t := range r.tasks {
		if t.ProjectID == projectID && t.AssignedTo != nil && *t.AssignedTo == userID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubTaskRepo) Update(_ *gorm.DB, task *models.Task) error {
	r.tasks[task.ID] = task
	return nil
}

func (r *stubTaskRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.tasks, id)
	return nil
}

type stubApplicationRepo struct {
	applications map[string]*models.ProjectApplication
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{applications: make(map[string]*models.ProjectApplication)}
}

func (r *stubApplicationRepo) Create(_ *gorm.DB, application *models.ProjectApplication) error {
	if application.ID == "" {
		application.ID = fmt.Sprintf("application-%d", len(r.applications)+1)
	}
	r.applications[application.ID] = application
	return nil
}

func (r *stubApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.ProjectApplication, error) {
	if a, ok := r.applications[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubApplicationRepo) FindAll(_ *gorm.DB) ([]models.ProjectApplication, error) {
	out := make([]models.ProjectApplication, 0, len(r.applications))
	for _, a := range r.applications {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubApplicationRepo) FindByProject(_ *gorm.DB, projectID string) ([]models.ProjectApplication, error) {
	out := make([]models.ProjectApplication, 0)
	for _, a := range r.applications {
		if a.ProjectID == projectID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) FindByDeveloper(_ *gorm.DB, developerID string) ([]models.ProjectApplication, error) {
	out := make([]models.ProjectApplication, 0)
	for _, a := range r.applications {
		if a.DeveloperID == developerID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) ExistsActive(_ *gorm.DB, projectID, developerID string) (bool, error) {
	for _, a := range r.applications {
		if a.ProjectID == projectID && a.DeveloperID == developerID &&
			a.Status != models.ApplicationStatusRejected {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubApplicationRepo) Update(_ *gorm.DB, application *models.ProjectApplication) error {
	r.applications[application.ID] = application
	return nil
}

func (r *stubApplicationRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.applications, id)
	return nil
}

type stubMessageRepo struct {
	messages []*models.Message
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{}
}

func (r *stubMessageRepo) Create(_ *gorm.DB, message *models.Message) error {
	if message.ID == "" {
		message.ID = fmt.Sprintf("message-%d", len(r.messages)+1)
	}
	r.messages = append(r.messages, message)
	return nil
}

func (r *stubMessageRepo) FindByID(_ *gorm.DB, id string) (*models.Message, error) {
	for _, m := range r.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubMessageRepo) FindInvolving(_ *gorm.DB, userID, partnerID string) ([]models.Message, error) {
	out := make([]models.Message, 0)
	for _, m := range r.messages {
		if m.SenderID != userID && m.ReceiverID != userID {
			continue
		}
		if partnerID != "" && m.SenderID != partnerID && m.ReceiverID != partnerID {
			continue
		}
		out = append(out, *m)
	}
	return out, nil
}

func (r *stubMessageRepo) FindInvolvingDesc(_ *gorm.DB, userID string) ([]models.Message, error) {
	out := make([]models.Message, 0)
	for i := len(r.messages) - 1; i >= 0; i-- {
		m := r.messages[i]
		if m.SenderID == userID || m.ReceiverID == userID {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *stubMessageRepo) Update(_ *gorm.DB, message *models.Message) error {
	for i, m := range r.messages {
		if m.ID == message.ID {
			r.messages[i] = message
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (r *stubMessageRepo) Delete(_ *gorm.DB, id string) error {
	for i, m := range r.messages {
		if m.ID == id {
			r.messages = append(r.messages[:i], r.messages[i+1:]...)
			return nil
		}
	}
	return nil
}

type stubPaymentRepo struct {
	payments map[string]*models.Payment
}

func newStubPaymentRepo() *stubPaymentRepo {
	return &stubPaymentRepo{payments: make(map[string]*models.Payment)}
}

func (r *stubPaymentRepo) Create(_ *gorm.DB, payment *models.Payment) error {
	if payment.ID == "" {
		payment.ID = fmt.Sprintf("payment-%d", len(r.payments)+1)
	}
	r.payments[payment.ID] = payment
	return nil
}

func (r *stubPaymentRepo) FindByID(_ *gorm.DB, id string) (*models.Payment, error) {
	if p, ok := r.payments[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubPaymentRepo) FindAll(_ *gorm.DB) ([]models.Payment, error) {
	out := make([]models.Payment, 0, len(r.payments))
	for _, p := range r.payments {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPaymentRepo) FindInvolving(_ *gorm.DB, userID string) ([]models.Payment, error) {
	out := make([]models.Payment, 0)
	for _, p := range r.payments {
		if p.PayerID == userID || p.PayeeID == userID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPaymentRepo) Update(_ *gorm.DB, payment *models.Payment) error {
	r.payments[payment.ID] = payment
	return nil
}

func (r *stubPaymentRepo) Delete(_ *gorm.DB, id string) error {
	delete(r.payments, id)
	return nil
}
