package services

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/campuscanteen/canteen-app/models"
	"github.com/campuscanteen/canteen-app/repository"
	"github.com/campuscanteen/canteen-app/utils"
)

// TransitionParams carries the per-edge required parameters. Approval needs
// an estimate, rejection needs a reason; every other edge takes neither.
type TransitionParams struct {
	EstimatedMinutes *int    `json:"estimated_minutes,omitempty"`
	RejectionReason  *string `json:"rejection_reason,omitempty"`
}

type edge struct {
	from, to string
}

type transitionRule struct {
	role     string
	validate func(p TransitionParams) error
	apply    func(o *models.Order, p TransitionParams)
	notice   func(o *models.Order) (title, message string)
}

func noParams(TransitionParams) error { return nil }

func noApply(*models.Order, TransitionParams) {}

// transitions is the full status graph. Any edge not present here is
// illegal, whoever asks.
var transitions = map[edge]transitionRule{
	{models.StatusPending, models.StatusApproved}: {
		role: models.RoleStaff,
		validate: func(p TransitionParams) error {
			if p.EstimatedMinutes == nil {
				return fmt.Errorf("%w: estimated_minutes", ErrMissingTransitionParameter)
			}
			if *p.EstimatedMinutes <= 0 {
				return fmt.Errorf("%w: estimated_minutes must be greater than zero", ErrMissingTransitionParameter)
			}
			return nil
		},
		apply: func(o *models.Order, p TransitionParams) {
			est := *p.EstimatedMinutes
			o.EstimatedMinutes = &est
		},
		notice: func(o *models.Order) (string, string) {
			return "Order approved",
				fmt.Sprintf("Your order #%d has been approved and will be ready in %d minutes", o.ID, *o.EstimatedMinutes)
		},
	},
	{models.StatusPending, models.StatusRejected}: {
		role: models.RoleStaff,
		validate: func(p TransitionParams) error {
			if p.RejectionReason == nil || strings.TrimSpace(*p.RejectionReason) == "" {
				return fmt.Errorf("%w: rejection_reason", ErrMissingTransitionParameter)
			}
			return nil
		},
		apply: func(o *models.Order, p TransitionParams) {
			reason := strings.TrimSpace(*p.RejectionReason)
			o.RejectionReason = &reason
		},
		notice: func(o *models.Order) (string, string) {
			return "Order rejected",
				fmt.Sprintf("Your order #%d was rejected: %s", o.ID, *o.RejectionReason)
		},
	},
	{models.StatusApproved, models.StatusPreparing}: {
		role:     models.RoleStaff,
		validate: noParams,
		apply:    noApply,
		notice: func(o *models.Order) (string, string) {
			return "Order update", fmt.Sprintf("Preparation of your order #%d has started", o.ID)
		},
	},
	{models.StatusPreparing, models.StatusReady}: {
		role:     models.RoleStaff,
		validate: noParams,
		apply:    noApply,
		notice: func(o *models.Order) (string, string) {
			return "Order ready", fmt.Sprintf("Your order #%d is ready for pickup", o.ID)
		},
	},
	{models.StatusReady, models.StatusCompleted}: {
		role:     models.RoleStaff,
		validate: noParams,
		apply:    noApply,
		notice: func(o *models.Order) (string, string) {
			return "Order completed", fmt.Sprintf("Your order #%d has been completed. Enjoy your meal!", o.ID)
		},
	},
}

// Lifecycle applies status transitions. It holds no order state of its own:
// every call re-reads the order, validates against the table above and
// writes back, serialized per order so two conflicting transitions can never
// both succeed from the same prior state.
type Lifecycle struct {
	orders     repository.OrderRepository
	dispatcher *Dispatcher
	locks      [64]sync.Mutex
	now        func() time.Time
}

func NewLifecycle(orders repository.OrderRepository, dispatcher *Dispatcher) *Lifecycle {
	return &Lifecycle{orders: orders, dispatcher: dispatcher, now: time.Now}
}

// lockFor stripes locks by order ID. Unrelated orders rarely share a stripe
// and never need to: the lock only guards the read-validate-write window.
func (l *Lifecycle) lockFor(orderID uint) *sync.Mutex {
	return &l.locks[orderID%uint(len(l.locks))]
}

// Transition validates and applies one edge of the status graph. On any
// failure the order is left exactly as it was and nothing is dispatched.
func (l *Lifecycle) Transition(orderID uint, actorRole, target string, params TransitionParams) (*models.Order, error) {
	mu := l.lockFor(orderID)
	mu.Lock()
	defer mu.Unlock()

	order, err := l.orders.GetOrder(orderID)
	if err != nil {
		return nil, err
	}

	rule, ok := transitions[edge{order.Status, target}]
	if !ok {
		reason := ReasonIllegalEdge
		if order.Terminal() {
			reason = ReasonTerminal
		}
		return nil, &InvalidTransitionError{From: order.Status, To: target, Reason: reason}
	}
	if actorRole != rule.role {
		return nil, &InvalidTransitionError{From: order.Status, To: target, Reason: ReasonWrongRole}
	}
	if err := rule.validate(params); err != nil {
		return nil, err
	}

	from := order.Status
	rule.apply(order, params)
	order.Status = target
	order.UpdatedAt = l.tick(order.UpdatedAt)

	if err := l.orders.PutOrder(order); err != nil {
		return nil, err
	}

	// Notify only after the write committed; a failed transition must have
	// no observable side effects.
	title, message := rule.notice(order)
	if _, err := l.dispatcher.Notify(order.CustomerID, title, message, models.NotificationStatus, &order.ID); err != nil {
		utils.ErrorLogger.Printf("order %d: status notification failed: %v", order.ID, err)
	}

	utils.InfoLogger.Printf("Order %d: %s -> %s by %s", order.ID, from, target, actorRole)
	return order, nil
}

// tick returns the transition timestamp, nudged forward if the clock has
// not advanced since the last update so UpdatedAt strictly increases.
func (l *Lifecycle) tick(prev time.Time) time.Time {
	now := l.now()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}
