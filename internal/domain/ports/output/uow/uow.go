package uow

import (
	assignment "change-request-service/internal/domain/ports/output/assignment"
	changerequest "change-request-service/internal/domain/ports/output/changerequest"
	project "change-request-service/internal/domain/ports/output/project"
	user "change-request-service/internal/domain/ports/output/user"
	"context"
)

//go:generate mockery --name UnitOfWork --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UnitOfWork.go
//go:generate mockery --name Transaction --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename Transaction.go

type UnitOfWork interface {
	Begin(ctx context.Context) (Transaction, error)
}

type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
	UserRepository() user.UserRepository
	ProjectRepository() project.ProjectRepository
	AssignmentRepository() assignment.AssignmentRepository
	ChangeRequestRepository() changerequest.ChangeRequestRepository
}
