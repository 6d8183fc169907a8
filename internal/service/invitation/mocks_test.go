package invitation

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/skillsync/skillsync-backend/internal/domain"
)

var (
	_ candidateRepo    = &candidateRepoMock{}
	_ recruiterRepo    = &recruiterRepoMock{}
	_ postingRepo      = &postingRepoMock{}
	_ notificationRepo = &notificationRepoMock{}
	_ applicationRepo  = &applicationRepoMock{}
	_ txManager        = &txManagerMock{}
)

type candidateRepoMock struct {
	GetByIDFunc     func(ctx context.Context, id uuid.UUID) (*domain.CandidateProfile, error)
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error)
}

func (m *candidateRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.CandidateProfile, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *candidateRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.CandidateProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

type recruiterRepoMock struct {
	GetByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error)
}

func (m *recruiterRepoMock) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.RecruiterProfile, error) {
	return m.GetByUserIDFunc(ctx, userID)
}

type postingRepoMock struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Posting, error)
}

func (m *postingRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Posting, error) {
	return m.GetByIDFunc(ctx, id)
}

type notificationRepoMock struct {
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindInviteFunc func(ctx context.Context, userID, postingID uuid.UUID) (*domain.Notification, error)
	CreateFunc     func(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
	SetActionFunc  func(ctx context.Context, id uuid.UUID, action domain.InviteAction) error

	createCalls    int
	setActionCalls int
}

func (m *notificationRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *notificationRepoMock) FindInvite(ctx context.Context, userID, postingID uuid.UUID) (*domain.Notification, error) {
	return m.FindInviteFunc(ctx, userID, postingID)
}

func (m *notificationRepoMock) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	m.createCalls++
	return m.CreateFunc(ctx, n)
}

func (m *notificationRepoMock) SetAction(ctx context.Context, id uuid.UUID, action domain.InviteAction) error {
	m.setActionCalls++
	return m.SetActionFunc(ctx, id, action)
}

type applicationRepoMock struct {
	GetByPairFunc  func(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error)
	CreateFunc     func(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)
	ReactivateFunc func(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error)

	createCalls     int
	reactivateCalls int
}

func (m *applicationRepoMock) GetByPair(ctx context.Context, candidateID, postingID uuid.UUID) (*domain.Application, error) {
	return m.GetByPairFunc(ctx, candidateID, postingID)
}

func (m *applicationRepoMock) Create(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error) {
	m.createCalls++
	return m.CreateFunc(ctx, candidateID, postingID, appliedAt)
}

func (m *applicationRepoMock) Reactivate(ctx context.Context, candidateID, postingID uuid.UUID, appliedAt time.Time) (*domain.Application, error) {
	m.reactivateCalls++
	return m.ReactivateFunc(ctx, candidateID, postingID, appliedAt)
}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	runInTxCalls int
}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	m.runInTxCalls++
	return m.RunInTxFunc(ctx, fn)
}

// passthroughTx runs the transaction body directly on the same context.
func passthroughTx() *txManagerMock {
	return &txManagerMock{
		RunInTxFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}
