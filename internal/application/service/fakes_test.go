package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/tallerlab/taller-api/internal/domain/entity"
	"github.com/tallerlab/taller-api/internal/domain/repository"
)

// In-memory repository fakes. They mirror the postgres implementations
// closely enough for service behavior: nil on not-found, prefix month
// filters, date-descending listings.

type fakeWorkOrderRepo struct {
	orders map[string]*entity.WorkOrder
}

func newFakeWorkOrderRepo() *fakeWorkOrderRepo {
	return &fakeWorkOrderRepo{orders: make(map[string]*entity.WorkOrder)}
}

func (r *fakeWorkOrderRepo) Create(ctx context.Context, order *entity.WorkOrder) error {
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) GetByID(ctx context.Context, id string) (*entity.WorkOrder, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	cp := *order
	return &cp, nil
}

func (r *fakeWorkOrderRepo) Update(ctx context.Context, order *entity.WorkOrder) error {
	for i := range order.Items {
		if order.Items[i].ID == uuid.Nil {
			order.Items[i].ID = uuid.New()
		}
	}
	cp := *order
	r.orders[order.ID] = &cp
	return nil
}

func (r *fakeWorkOrderRepo) Delete(ctx context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeWorkOrderRepo) List(ctx context.Context, params *repository.WorkOrderFilterParams) ([]entity.WorkOrder, int64, error) {
	all, _ := r.ListAll(ctx)
	filtered := make([]entity.WorkOrder, 0, len(all))
	for _, o := range all {
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		if params.Month != "" && !strings.HasPrefix(o.Date, params.Month) {
			continue
		}
		filtered = append(filtered, o)
	}
	return filtered, int64(len(filtered)), nil
}

func (r *fakeWorkOrderRepo) ListAll(ctx context.Context) ([]entity.WorkOrder, error) {
	orders := make([]entity.WorkOrder, 0, len(r.orders))
	for _, o := range r.orders {
		orders = append(orders, *o)
	}
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].Date != orders[j].Date {
			return orders[i].Date > orders[j].Date
		}
		return orders[i].ID > orders[j].ID
	})
	return orders, nil
}

func (r *fakeWorkOrderRepo) ListByMonth(ctx context.Context, yearMonth string) ([]entity.WorkOrder, error) {
	all, _ := r.ListAll(ctx)
	orders := make([]entity.WorkOrder, 0, len(all))
	for _, o := range all {
		if strings.HasPrefix(o.Date, yearMonth) {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

func (r *fakeWorkOrderRepo) MaxAssignedID(ctx context.Context) (int, error) {
	max := 0
	for id := range r.orders {
		n, err := strconv.Atoi(id)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (r *fakeWorkOrderRepo) GetItem(ctx context.Context, orderID string, itemID uuid.UUID) (*entity.WorkItem, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, nil
	}
	for _, item := range order.Items {
		if item.ID == itemID {
			cp := item
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeWorkOrderRepo) SaveItem(ctx context.Context, item *entity.WorkItem) error {
	order, ok := r.orders[item.OrderID]
	if !ok {
		return nil
	}
	for i := range order.Items {
		if order.Items[i].ID == item.ID {
			order.Items[i] = *item
			return nil
		}
	}
	order.Items = append(order.Items, *item)
	return nil
}

func (r *fakeWorkOrderRepo) ReplaceAll(ctx context.Context, orders []entity.WorkOrder) error {
	r.orders = make(map[string]*entity.WorkOrder, len(orders))
	for i := range orders {
		cp := orders[i]
		r.orders[cp.ID] = &cp
	}
	return nil
}

type fakeExpenseRepo struct {
	expenses map[string]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[string]*entity.Expense)}
}

func (r *fakeExpenseRepo) Create(ctx context.Context, expense *entity.Expense) error {
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) GetByID(ctx context.Context, id string) (*entity.Expense, error) {
	expense, ok := r.expenses[id]
	if !ok {
		return nil, nil
	}
	cp := *expense
	return &cp, nil
}

func (r *fakeExpenseRepo) Update(ctx context.Context, expense *entity.Expense) error {
	cp := *expense
	r.expenses[expense.ID] = &cp
	return nil
}

func (r *fakeExpenseRepo) Delete(ctx context.Context, id string) error {
	delete(r.expenses, id)
	return nil
}

func (r *fakeExpenseRepo) List(ctx context.Context, params *repository.ExpenseFilterParams) ([]entity.Expense, int64, error) {
	all, _ := r.ListAll(ctx)
	filtered := make([]entity.Expense, 0, len(all))
	for _, e := range all {
		if params.Category != nil && e.Category != *params.Category {
			continue
		}
		if params.Month != "" && !strings.HasPrefix(e.Date, params.Month) {
			continue
		}
		if params.OnlyUnpaid && e.IsPaid {
			continue
		}
		filtered = append(filtered, e)
	}
	return filtered, int64(len(filtered)), nil
}

func (r *fakeExpenseRepo) ListAll(ctx context.Context) ([]entity.Expense, error) {
	expenses := make([]entity.Expense, 0, len(r.expenses))
	for _, e := range r.expenses {
		expenses = append(expenses, *e)
	}
	sort.Slice(expenses, func(i, j int) bool {
		if expenses[i].Date != expenses[j].Date {
			return expenses[i].Date > expenses[j].Date
		}
		return expenses[i].ID > expenses[j].ID
	})
	return expenses, nil
}

func (r *fakeExpenseRepo) ListByMonth(ctx context.Context, yearMonth string) ([]entity.Expense, error) {
	all, _ := r.ListAll(ctx)
	expenses := make([]entity.Expense, 0, len(all))
	for _, e := range all {
		if strings.HasPrefix(e.Date, yearMonth) {
			expenses = append(expenses, e)
		}
	}
	return expenses, nil
}

func (r *fakeExpenseRepo) MaxAssignedID(ctx context.Context) (int, error) {
	max := 0
	for id := range r.expenses {
		if !strings.HasPrefix(id, "G") {
			continue
		}
		n, err := strconv.Atoi(id[1:])
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return max, nil
}

func (r *fakeExpenseRepo) ReplaceAll(ctx context.Context, expenses []entity.Expense) error {
	r.expenses = make(map[string]*entity.Expense, len(expenses))
	for i := range expenses {
		cp := expenses[i]
		r.expenses[cp.ID] = &cp
	}
	return nil
}

type fakeAppointmentRepo struct {
	appointments map[uuid.UUID]*entity.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[uuid.UUID]*entity.Appointment)}
}

func (r *fakeAppointmentRepo) Create(ctx context.Context, appointment *entity.Appointment) error {
	if appointment.ID == uuid.Nil {
		appointment.ID = uuid.New()
	}
	cp := *appointment
	r.appointments[appointment.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	appointment, ok := r.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *appointment
	return &cp, nil
}

func (r *fakeAppointmentRepo) Update(ctx context.Context, appointment *entity.Appointment) error {
	cp := *appointment
	r.appointments[appointment.ID] = &cp
	return nil
}

func (r *fakeAppointmentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.appointments, id)
	return nil
}

func (r *fakeAppointmentRepo) List(ctx context.Context, params *repository.AppointmentFilterParams) ([]entity.Appointment, error) {
	all, _ := r.ListAll(ctx)
	filtered := make([]entity.Appointment, 0, len(all))
	for _, a := range all {
		if params.Date != "" && a.Date != params.Date {
			continue
		}
		if params.Status != nil && a.Status != *params.Status {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered, nil
}

func (r *fakeAppointmentRepo) ListAll(ctx context.Context) ([]entity.Appointment, error) {
	appointments := make([]entity.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		appointments = append(appointments, *a)
	}
	sort.Slice(appointments, func(i, j int) bool {
		if appointments[i].Date != appointments[j].Date {
			return appointments[i].Date < appointments[j].Date
		}
		return appointments[i].Time < appointments[j].Time
	})
	return appointments, nil
}

func (r *fakeAppointmentRepo) ReplaceAll(ctx context.Context, appointments []entity.Appointment) error {
	r.appointments = make(map[uuid.UUID]*entity.Appointment, len(appointments))
	for i := range appointments {
		cp := appointments[i]
		r.appointments[cp.ID] = &cp
	}
	return nil
}

type fakeRaffleRepo struct {
	winners map[uuid.UUID]*entity.RaffleWinner
}

func newFakeRaffleRepo() *fakeRaffleRepo {
	return &fakeRaffleRepo{winners: make(map[uuid.UUID]*entity.RaffleWinner)}
}

func (r *fakeRaffleRepo) Create(ctx context.Context, winner *entity.RaffleWinner) error {
	if winner.ID == uuid.Nil {
		winner.ID = uuid.New()
	}
	cp := *winner
	r.winners[winner.ID] = &cp
	return nil
}

func (r *fakeRaffleRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.RaffleWinner, error) {
	winner, ok := r.winners[id]
	if !ok {
		return nil, nil
	}
	cp := *winner
	return &cp, nil
}

func (r *fakeRaffleRepo) Update(ctx context.Context, winner *entity.RaffleWinner) error {
	cp := *winner
	r.winners[winner.ID] = &cp
	return nil
}

func (r *fakeRaffleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.winners, id)
	return nil
}

func (r *fakeRaffleRepo) ListAll(ctx context.Context) ([]entity.RaffleWinner, error) {
	winners := make([]entity.RaffleWinner, 0, len(r.winners))
	for _, w := range r.winners {
		winners = append(winners, *w)
	}
	sort.Slice(winners, func(i, j int) bool {
		return winners[i].Date > winners[j].Date
	})
	return winners, nil
}

func (r *fakeRaffleRepo) ReplaceAll(ctx context.Context, winners []entity.RaffleWinner) error {
	r.winners = make(map[uuid.UUID]*entity.RaffleWinner, len(winners))
	for i := range winners {
		cp := winners[i]
		r.winners[cp.ID] = &cp
	}
	return nil
}

type fakeSettingsRepo struct {
	settings *entity.WorkshopSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{}
}

func (r *fakeSettingsRepo) Get(ctx context.Context) (*entity.WorkshopSettings, error) {
	if r.settings == nil {
		return nil, nil
	}
	cp := *r.settings
	return &cp, nil
}

func (r *fakeSettingsRepo) Save(ctx context.Context, settings *entity.WorkshopSettings) error {
	cp := *settings
	r.settings = &cp
	return nil
}

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}
