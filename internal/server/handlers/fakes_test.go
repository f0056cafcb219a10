package handlers_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fitcenter-backend/internal/domain/models"
	"fitcenter-backend/internal/repository"
	"fitcenter-backend/pkg/apperrors"
)

// In-memory fakes mirroring the mongodb repositories' error contract:
// malformed hex ids answer validation errors, absent records answer
// not-found.

func parseID(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return apperrors.Validationf("invalid id %q", id)
	}
	return nil
}

type fakeAssetStore struct {
	mu    sync.Mutex
	items map[string]models.Asset
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{items: map[string]models.Asset{}}
}

func (f *fakeAssetStore) Create(_ context.Context, a *models.Asset) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a.ID = primitive.NewObjectID()
	a.CreatedAt = time.Now()
	f.items[a.ID.Hex()] = *a
	return nil
}

func (f *fakeAssetStore) List(_ context.Context) ([]models.Asset, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Asset{}
	for _, a := range f.items {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAssetStore) GetByID(_ context.Context, id string) (*models.Asset, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("asset %s not found", id)
	}
	return &a, nil
}

func (f *fakeAssetStore) Update(_ context.Context, id string, a *models.Asset) (*models.Asset, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return nil, apperrors.NotFoundf("asset %s not found", id)
	}
	a.ID, _ = primitive.ObjectIDFromHex(id)
	f.items[id] = *a
	return a, nil
}

func (f *fakeAssetStore) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFoundf("asset %s not found", id)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeAssetStore) TotalValue(_ context.Context) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var total float64
	for _, a := range f.items {
		total += a.EstimatedValue
	}
	return total, nil
}

type fakeCashLogStore struct {
	mu      sync.Mutex
	entries []models.CashLogEntry
}

func (f *fakeCashLogStore) Create(_ context.Context, e *models.CashLogEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	e.ID = primitive.NewObjectID()
	e.CreatedAt = time.Now()
	if e.Date.IsZero() {
		e.Date = e.CreatedAt
	}
	f.entries = append(f.entries, *e)
	return nil
}

func (f *fakeCashLogStore) List(_ context.Context) ([]models.CashLogEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.CashLogEntry{}, f.entries...), nil
}

type fakePaymentStore struct {
	mu       sync.Mutex
	payments map[string]models.Payment // keyed by transaction id
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: map[string]models.Payment{}}
}

func (f *fakePaymentStore) Insert(_ context.Context, p *models.Payment) (bool, *models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.payments[p.TransactionID]; ok {
		return false, &existing, nil
	}
	p.ID = primitive.NewObjectID()
	if p.Timestamp.IsZero() {
		p.Timestamp = time.Now()
	}
	f.payments[p.TransactionID] = *p
	return true, p, nil
}

func (f *fakePaymentStore) List(ctx context.Context) ([]models.Payment, error) {
	return f.ListByType(ctx, "")
}

func (f *fakePaymentStore) ListByType(_ context.Context, txType string) ([]models.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Payment{}
	for _, p := range f.payments {
		if txType == "" || p.Type == txType {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	return out, nil
}

func (f *fakePaymentStore) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for txID, p := range f.payments {
		if p.ID.Hex() == id {
			delete(f.payments, txID)
			return nil
		}
	}
	return apperrors.NotFoundf("payment %s not found", id)
}

type fakePayrollStore struct {
	mu    sync.Mutex
	items map[string]models.Payroll
}

func newFakePayrollStore() *fakePayrollStore {
	return &fakePayrollStore{items: map[string]models.Payroll{}}
}

func (f *fakePayrollStore) Create(_ context.Context, p *models.Payroll) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = time.Now()
	f.items[p.ID.Hex()] = *p
	return nil
}

func (f *fakePayrollStore) List(_ context.Context) ([]models.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Payroll{}
	for _, p := range f.items {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePayrollStore) ListByStatus(_ context.Context, status string) ([]models.Payroll, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Payroll{}
	for _, p := range f.items {
		if p.PaymentStatus == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayrollStore) GetByID(_ context.Context, id string) (*models.Payroll, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("payroll %s not found", id)
	}
	return &p, nil
}

func (f *fakePayrollStore) Update(_ context.Context, id string, p *models.Payroll) (*models.Payroll, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return nil, apperrors.NotFoundf("payroll %s not found", id)
	}
	p.ID, _ = primitive.ObjectIDFromHex(id)
	f.items[id] = *p
	return p, nil
}

func (f *fakePayrollStore) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFoundf("payroll %s not found", id)
	}
	delete(f.items, id)
	return nil
}

func (f *fakePayrollStore) SetStatus(_ context.Context, id, status string) (*models.Payroll, error) {
	return f.setField(id, func(p *models.Payroll) { p.PaymentStatus = status })
}

func (f *fakePayrollStore) SetNotes(_ context.Context, id, notes string) (*models.Payroll, error) {
	return f.setField(id, func(p *models.Payroll) { p.Notes = notes })
}

func (f *fakePayrollStore) setField(id string, apply func(*models.Payroll)) (*models.Payroll, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("payroll %s not found", id)
	}
	apply(&p)
	f.items[id] = p
	return &p, nil
}

func (f *fakePayrollStore) MarkOverdueBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for id, p := range f.items {
		if p.PaymentStatus == models.PayrollStatusPending && p.Date.Before(cutoff) {
			p.PaymentStatus = models.PayrollStatusOverdue
			f.items[id] = p
			n++
		}
	}
	return n, nil
}

type fakeStaffStore struct {
	mu    sync.Mutex
	items map[string]models.StaffMember
}

func newFakeStaffStore() *fakeStaffStore {
	return &fakeStaffStore{items: map[string]models.StaffMember{}}
}

func (f *fakeStaffStore) Create(_ context.Context, s *models.StaffMember) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.Username == s.Username {
			return apperrors.Conflictf("username %s already registered", s.Username)
		}
	}
	s.ID = primitive.NewObjectID()
	s.CreatedAt = time.Now()
	f.items[s.ID.Hex()] = *s
	return nil
}

func (f *fakeStaffStore) List(_ context.Context) ([]models.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.StaffMember{}
	for _, s := range f.items {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStaffStore) GetByID(_ context.Context, id string) (*models.StaffMember, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("staff member %s not found", id)
	}
	return &s, nil
}

func (f *fakeStaffStore) FindByUsername(_ context.Context, username string) (*models.StaffMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.items {
		if s.Username == username {
			return &s, nil
		}
	}
	return nil, apperrors.NotFoundf("staff member %s not found", username)
}

func (f *fakeStaffStore) Update(_ context.Context, id string, s *models.StaffMember) (*models.StaffMember, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return nil, apperrors.NotFoundf("staff member %s not found", id)
	}
	s.ID, _ = primitive.ObjectIDFromHex(id)
	f.items[id] = *s
	return s, nil
}

func (f *fakeStaffStore) UpdatePasswordHash(_ context.Context, id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.items[id]
	if !ok {
		return apperrors.NotFoundf("staff member %s not found", id)
	}
	s.PasswordHash = hash
	f.items[id] = s
	return nil
}

func (f *fakeStaffStore) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFoundf("staff member %s not found", id)
	}
	delete(f.items, id)
	return nil
}

type fakeSignInStore struct {
	mu      sync.Mutex
	records []models.SignInRecord
}

func (f *fakeSignInStore) Create(_ context.Context, r *models.SignInRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	if r.SignedIn.IsZero() {
		r.SignedIn = time.Now()
	}
	f.records = append(f.records, *r)
	return nil
}

type fakeCoachStore struct {
	mu    sync.Mutex
	items map[string]models.Coach
}

func newFakeCoachStore() *fakeCoachStore {
	return &fakeCoachStore{items: map[string]models.Coach{}}
}

func (f *fakeCoachStore) Create(_ context.Context, c *models.Coach) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.Email == c.Email {
			return apperrors.Conflictf("email %s already registered", c.Email)
		}
	}
	c.ID = primitive.NewObjectID()
	c.CreatedAt = time.Now()
	f.items[c.ID.Hex()] = *c
	return nil
}

func (f *fakeCoachStore) FindByEmail(_ context.Context, email string) (*models.Coach, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.items {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, apperrors.NotFoundf("coach %s not found", email)
}

func (f *fakeCoachStore) GetByID(_ context.Context, id string) (*models.Coach, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("coach %s not found", id)
	}
	return &c, nil
}

func (f *fakeCoachStore) Update(_ context.Context, id string, c *models.Coach) (*models.Coach, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return nil, apperrors.NotFoundf("coach %s not found", id)
	}
	c.ID, _ = primitive.ObjectIDFromHex(id)
	f.items[id] = *c
	return c, nil
}

type fakeUserStore struct {
	mu    sync.Mutex
	items map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{items: map[string]models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, u *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.items {
		if m.Email == u.Email {
			return apperrors.Conflictf("email %s already registered", u.Email)
		}
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now()
	if u.Role == "" {
		u.Role = "member"
	}
	f.items[u.ID.Hex()] = *u
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.items {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, apperrors.NotFoundf("user %s not found", email)
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("user %s not found", id)
	}
	return &u, nil
}

func (f *fakeUserStore) SetResetToken(_ context.Context, id, token string, expiry time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return apperrors.NotFoundf("user %s not found", id)
	}
	u.ResetToken = token
	u.ResetTokenExpiry = expiry
	f.items[id] = u
	return nil
}

func (f *fakeUserStore) FindByResetToken(_ context.Context, token string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.items {
		if u.ResetToken == token && token != "" {
			return &u, nil
		}
	}
	return nil, apperrors.NotFoundf("user by reset token not found")
}

func (f *fakeUserStore) UpdatePasswordHash(_ context.Context, id, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.items[id]
	if !ok {
		return apperrors.NotFoundf("user %s not found", id)
	}
	u.PasswordHash = hash
	u.ResetToken = ""
	u.ResetTokenExpiry = time.Time{}
	f.items[id] = u
	return nil
}

type fakeBioDataStore struct {
	mu    sync.Mutex
	items map[string]models.BioData // keyed by user id
}

func newFakeBioDataStore() *fakeBioDataStore {
	return &fakeBioDataStore{items: map[string]models.BioData{}}
}

func (f *fakeBioDataStore) Upsert(_ context.Context, d *models.BioData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if existing, ok := f.items[d.UserID]; ok {
		d.ID = existing.ID
	} else {
		d.ID = primitive.NewObjectID()
	}
	d.UpdatedAt = time.Now()
	f.items[d.UserID] = *d
	return nil
}

func (f *fakeBioDataStore) GetByUserID(_ context.Context, userID string) (*models.BioData, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.items[userID]
	if !ok {
		return nil, apperrors.NotFoundf("biodata for user %s not found", userID)
	}
	return &d, nil
}

func (f *fakeBioDataStore) DeleteByUserID(_ context.Context, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[userID]; !ok {
		return apperrors.NotFoundf("biodata for user %s not found", userID)
	}
	delete(f.items, userID)
	return nil
}

type fakeTrainingStore struct {
	mu    sync.Mutex
	items map[string]models.TrainingRequest
}

func newFakeTrainingStore() *fakeTrainingStore {
	return &fakeTrainingStore{items: map[string]models.TrainingRequest{}}
}

func (f *fakeTrainingStore) Create(_ context.Context, r *models.TrainingRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r.ID = primitive.NewObjectID()
	r.CreatedAt = time.Now()
	f.items[r.ID.Hex()] = *r
	return nil
}

func (f *fakeTrainingStore) List(_ context.Context, filter repository.TrainingFilter) ([]models.TrainingRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.TrainingRequest{}
	for _, r := range f.items {
		if filter.Status != "" && r.Status != filter.Status {
			continue
		}
		if filter.CoachID != "" && r.CoachID != filter.CoachID {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeTrainingStore) GetByID(_ context.Context, id string) (*models.TrainingRequest, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("training request %s not found", id)
	}
	return &r, nil
}

func (f *fakeTrainingStore) Update(_ context.Context, id string, r *models.TrainingRequest) (*models.TrainingRequest, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return nil, apperrors.NotFoundf("training request %s not found", id)
	}
	r.ID, _ = primitive.ObjectIDFromHex(id)
	f.items[id] = *r
	return r, nil
}

func (f *fakeTrainingStore) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFoundf("training request %s not found", id)
	}
	delete(f.items, id)
	return nil
}

type fakeFeedbackStore struct {
	mu    sync.Mutex
	items map[string]models.Feedback
}

func newFakeFeedbackStore() *fakeFeedbackStore {
	return &fakeFeedbackStore{items: map[string]models.Feedback{}}
}

func (f *fakeFeedbackStore) Create(_ context.Context, fb *models.Feedback) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	fb.ID = primitive.NewObjectID()
	fb.CreatedAt = time.Now()
	if fb.Date.IsZero() {
		fb.Date = fb.CreatedAt
	}
	if fb.Status == "" {
		fb.Status = models.FeedbackStatusNew
	}
	f.items[fb.ID.Hex()] = *fb
	return nil
}

func (f *fakeFeedbackStore) List(_ context.Context, filter repository.FeedbackFilter) ([]models.Feedback, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []models.Feedback{}
	for _, fb := range f.items {
		if filter.Type != "" && fb.Type != filter.Type {
			continue
		}
		if filter.Status != "" && fb.Status != filter.Status {
			continue
		}
		out = append(out, fb)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeFeedbackStore) GetByID(_ context.Context, id string) (*models.Feedback, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	fb, ok := f.items[id]
	if !ok {
		return nil, apperrors.NotFoundf("feedback %s not found", id)
	}
	return &fb, nil
}

func (f *fakeFeedbackStore) Update(_ context.Context, id string, fb *models.Feedback) (*models.Feedback, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return nil, apperrors.NotFoundf("feedback %s not found", id)
	}
	fb.ID, _ = primitive.ObjectIDFromHex(id)
	f.items[id] = *fb
	return fb, nil
}

func (f *fakeFeedbackStore) Delete(_ context.Context, id string) error {
	if err := parseID(id); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return apperrors.NotFoundf("feedback %s not found", id)
	}
	delete(f.items, id)
	return nil
}

func (f *fakeFeedbackStore) Stats(_ context.Context) (*models.FeedbackStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stats := &models.FeedbackStats{ByRating: map[string]int64{}}
	var weighted int64
	for _, fb := range f.items {
		stats.Total++
		weighted += int64(fb.Rating)
		switch fb.Rating {
		case 1:
			stats.ByRating["1"]++
		case 2:
			stats.ByRating["2"]++
		case 3:
			stats.ByRating["3"]++
		case 4:
			stats.ByRating["4"]++
		case 5:
			stats.ByRating["5"]++
		}
	}
	if stats.Total > 0 {
		stats.AverageRating = float64(weighted) / float64(stats.Total)
	}
	return stats, nil
}
