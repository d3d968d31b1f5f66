package services

import (
	"time"

	portsrepo "github.com/SscSPs/expense_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// The dispatcher's lifecycle (Start/Stop) is owned by the caller.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, dispatcher portssvc.NotificationDispatcher) *portssvc.ServiceContainer {
	clock := time.Now

	container := &portssvc.ServiceContainer{
		Notifications: dispatcher,
	}

	container.Expense = NewExpenseService(
		repos.ExpenseRepo,
		WithExpenseNotifier(dispatcher),
		WithExpenseClock(clock),
	)

	container.Reimbursement = NewReimbursementService(
		repos.ReimbursementRepo,
		repos.ExpenseRepo,
		WithReimbursementNotifier(dispatcher),
		WithReimbursementClock(clock),
	)

	container.Attachment = NewAttachmentService(repos.AttachmentRepo, clock)
	container.User = NewUserService(repos.UserRepo, clock)
	container.Token = NewTokenService(cfg)

	return container
}
