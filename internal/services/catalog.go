package services

import (
	"cmp"
	"database/sql"
	"time"

	"dentalclinic/internal/controller"
	"dentalclinic/internal/domain"
	"dentalclinic/internal/domain/models"
	"dentalclinic/internal/metrics"
	"dentalclinic/internal/query"
	"dentalclinic/internal/repositories"

	"golang.org/x/text/language"
)

// Screen names used in routes and metrics.
const (
	ScreenPatientAccesses = "patient-accesses"
	ScreenReceivables     = "receivables"
	ScreenAccessGroups    = "access-groups"
	ScreenSuppliers       = "suppliers"
	ScreenProcedures      = "procedures"
	ScreenBudgets         = "budgets"
	ScreenAppointments    = "appointments"
)

// Sources holds the record source behind every screen.
type Sources struct {
	PatientAccesses controller.Source[models.PatientAccess]
	Receivables     controller.Source[models.Receivable]
	AccessGroups    controller.Source[models.AccessGroup]
	Suppliers       controller.Source[models.Supplier]
	Procedures      controller.Source[models.Procedure]
	Budgets         controller.Source[models.Budget]
	Appointments    controller.Source[models.Appointment]
}

// MemorySources serves the seeded fixtures, each fetch delayed by delay.
func MemorySources(delay time.Duration) Sources {
	return Sources{
		PatientAccesses: repositories.MemorySource[models.PatientAccess]{Name: ScreenPatientAccesses, Records: repositories.SeedPatientAccesses(), Delay: delay},
		Receivables:     repositories.MemorySource[models.Receivable]{Name: ScreenReceivables, Records: repositories.SeedReceivables(), Delay: delay},
		AccessGroups:    repositories.MemorySource[models.AccessGroup]{Name: ScreenAccessGroups, Records: repositories.SeedAccessGroups(), Delay: delay},
		Suppliers:       repositories.MemorySource[models.Supplier]{Name: ScreenSuppliers, Records: repositories.SeedSuppliers(), Delay: delay},
		Procedures:      repositories.MemorySource[models.Procedure]{Name: ScreenProcedures, Records: repositories.SeedProcedures(), Delay: delay},
		Budgets:         repositories.MemorySource[models.Budget]{Name: ScreenBudgets, Records: repositories.SeedBudgets(), Delay: delay},
		Appointments:    repositories.MemorySource[models.Appointment]{Name: ScreenAppointments, Records: repositories.SeedAppointments(), Delay: delay},
	}
}

// MySQLSources reads every screen from db. A nil db falls back to config.DB.
func MySQLSources(db *sql.DB) Sources {
	return Sources{
		PatientAccesses: repositories.PatientAccessRepository{DB: db},
		Receivables:     repositories.ReceivableRepository{DB: db},
		AccessGroups:    repositories.AccessGroupRepository{DB: db},
		Suppliers:       repositories.SupplierRepository{DB: db},
		Procedures:      repositories.ProcedureRepository{DB: db},
		Budgets:         repositories.BudgetRepository{DB: db},
		Appointments:    repositories.AppointmentRepository{DB: db},
	}
}

// CatalogOptions tunes every screen of a catalog.
type CatalogOptions struct {
	Locale   language.Tag
	PageSize int
	Metrics  *metrics.Recorder
}

// Catalog is the fixed set of dashboard screens.
type Catalog struct {
	screens map[string]Screen
	order   []string
}

func NewCatalog(src Sources, opts CatalogOptions) *Catalog {
	if opts.PageSize <= 0 {
		opts.PageSize = query.DefaultPageSize
	}
	c := &Catalog{screens: map[string]Screen{}}
	c.add(newScreen(patientAccessScreen(src.PatientAccesses), opts.Locale, opts.PageSize, opts.Metrics))
	c.add(newScreen(receivableScreen(src.Receivables), opts.Locale, opts.PageSize, opts.Metrics))
	c.add(newScreen(accessGroupScreen(src.AccessGroups), opts.Locale, opts.PageSize, opts.Metrics))
	c.add(newScreen(supplierScreen(src.Suppliers), opts.Locale, opts.PageSize, opts.Metrics))
	c.add(newScreen(procedureScreen(src.Procedures), opts.Locale, opts.PageSize, opts.Metrics))
	c.add(newScreen(budgetScreen(src.Budgets), opts.Locale, opts.PageSize, opts.Metrics))
	c.add(newScreen(appointmentScreen(src.Appointments), opts.Locale, opts.PageSize, opts.Metrics))
	return c
}

func (c *Catalog) add(s Screen) {
	name := s.Info().Name
	c.screens[name] = s
	c.order = append(c.order, name)
}

// Get returns the named screen or a NotFoundError.
func (c *Catalog) Get(name string) (Screen, error) {
	s, ok := c.screens[name]
	if !ok {
		return nil, domain.NotFoundError{Resource: "tela", ID: name}
	}
	return s, nil
}

// Names lists screens in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.order...)
}

func (c *Catalog) Infos() []ScreenInfo {
	out := make([]ScreenInfo, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.screens[name].Info())
	}
	return out
}

func patientAccessScreen(src controller.Source[models.PatientAccess]) screenConfig[models.PatientAccess] {
	type R = models.PatientAccess
	return screenConfig[R]{
		name:  ScreenPatientAccesses,
		title: "Acessos de pacientes",
		fields: []query.Field[R]{
			{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
			{Name: "patient_name", Label: "Paciente", Kind: query.KindString, Value: func(r R) any { return r.PatientName }},
			{Name: "document", Label: "CPF", Kind: query.KindString, Value: func(r R) any { return r.Document }},
			{Name: "email", Label: "E-mail", Kind: query.KindString, Value: func(r R) any { return r.Email }},
			{Name: "access_group", Label: "Grupo", Kind: query.KindString, Value: func(r R) any { return r.AccessGroup }},
			{Name: "risk_level", Label: "Risco", Kind: query.KindOrdinal, Ranks: domain.RiskLevel, Value: func(r R) any { return r.RiskLevel }},
			{Name: "active", Label: "Ativo", Kind: query.KindBool, Value: func(r R) any { return r.Active }},
			{Name: "last_access", Label: "Último acesso", Kind: query.KindDate, Value: func(r R) any { return r.LastAccess }},
		},
		searchable: []string{"patient_name", "document", "email"},
		filterable: []string{"access_group", "risk_level", "active"},
		sortKey:    "patient_name",
		order:      query.Asc,
		source:     src,
	}
}

func receivableScreen(src controller.Source[models.Receivable]) screenConfig[models.Receivable] {
	type R = models.Receivable
	return screenConfig[R]{
		name:  ScreenReceivables,
		title: "Contas a receber",
		fields: []query.Field[R]{
			{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
			{Name: "code", Label: "Código", Kind: query.KindString, Value: func(r R) any { return r.Code }},
			{Name: "patient_name", Label: "Paciente", Kind: query.KindString, Value: func(r R) any { return r.PatientName }},
			{Name: "description", Label: "Descrição", Kind: query.KindString, Value: func(r R) any { return r.Description }},
			{Name: "amount", Label: "Valor", Kind: query.KindNumber, Value: func(r R) any { return r.Amount }},
			{Name: "due_date", Label: "Vencimento", Kind: query.KindDate, Value: func(r R) any { return r.DueDate }},
			{Name: "status", Label: "Situação", Kind: query.KindOrdinal, Ranks: domain.ReceivableStatus, Value: func(r R) any { return r.Status }},
			{Name: "payment_method", Label: "Forma de pagamento", Kind: query.KindString, Value: func(r R) any { return r.PaymentMethod }},
		},
		searchable: []string{"code", "patient_name", "description"},
		filterable: []string{"status", "payment_method"},
		money:      []string{"amount"},
		sortKey:    "due_date",
		order:      query.Asc,
		source:     src,
	}
}

func accessGroupScreen(src controller.Source[models.AccessGroup]) screenConfig[models.AccessGroup] {
	type R = models.AccessGroup
	return screenConfig[R]{
		name:  ScreenAccessGroups,
		title: "Grupos de acesso",
		fields: []query.Field[R]{
			{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
			{Name: "name", Label: "Nome", Kind: query.KindString, Value: func(r R) any { return r.Name }},
			{Name: "description", Label: "Descrição", Kind: query.KindString, Value: func(r R) any { return r.Description }},
			{Name: "members", Label: "Membros", Kind: query.KindNumber, Value: func(r R) any { return r.Members }},
			{Name: "active", Label: "Ativo", Kind: query.KindBool, Value: func(r R) any { return r.Active }},
			{Name: "created_at", Label: "Criado em", Kind: query.KindDate, Value: func(r R) any { return r.CreatedAt }},
		},
		searchable: []string{"name", "description"},
		filterable: []string{"active"},
		sortKey:    "name",
		order:      query.Asc,
		source:     src,
	}
}

func supplierScreen(src controller.Source[models.Supplier]) screenConfig[models.Supplier] {
	type R = models.Supplier
	return screenConfig[R]{
		name:  ScreenSuppliers,
		title: "Fornecedores",
		fields: []query.Field[R]{
			{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
			{Name: "name", Label: "Razão social", Kind: query.KindString, Value: func(r R) any { return r.Name }},
			{Name: "cnpj", Label: "CNPJ", Kind: query.KindString, Value: func(r R) any { return r.CNPJ }},
			{Name: "category", Label: "Categoria", Kind: query.KindString, Value: func(r R) any { return r.Category }},
			{Name: "city", Label: "Cidade", Kind: query.KindString, Value: func(r R) any { return r.City }},
			{Name: "phone", Label: "Telefone", Kind: query.KindString, Value: func(r R) any { return r.Phone }},
			{Name: "priority", Label: "Prioridade", Kind: query.KindOrdinal, Ranks: domain.Priority, Value: func(r R) any { return r.Priority }},
			{Name: "active", Label: "Ativo", Kind: query.KindBool, Value: func(r R) any { return r.Active }},
		},
		searchable: []string{"name", "cnpj", "city"},
		filterable: []string{"category", "priority", "active"},
		sortKey:    "name",
		order:      query.Asc,
		source:     src,
	}
}

func procedureScreen(src controller.Source[models.Procedure]) screenConfig[models.Procedure] {
	type R = models.Procedure
	return screenConfig[R]{
		name:  ScreenProcedures,
		title: "Procedimentos",
		fields: []query.Field[R]{
			{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
			{Name: "code", Label: "Código", Kind: query.KindString, Value: func(r R) any { return r.Code }},
			{Name: "name", Label: "Procedimento", Kind: query.KindString, Value: func(r R) any { return r.Name }},
			{Name: "category", Label: "Especialidade", Kind: query.KindOrdinal, Ranks: domain.ProcedureCategory, Value: func(r R) any { return r.Category }},
			{Name: "price", Label: "Preço", Kind: query.KindNumber, Value: func(r R) any { return r.Price }},
			{Name: "duration_minutes", Label: "Duração (min)", Kind: query.KindNumber, Value: func(r R) any { return r.DurationMinutes }},
			{Name: "active", Label: "Ativo", Kind: query.KindBool, Value: func(r R) any { return r.Active }},
		},
		searchable: []string{"code", "name"},
		filterable: []string{"category", "active"},
		money:      []string{"price"},
		sortKey:    "category",
		order:      query.Asc,
		source:     src,
	}
}

func budgetScreen(src controller.Source[models.Budget]) screenConfig[models.Budget] {
	type R = models.Budget
	return screenConfig[R]{
		name:  ScreenBudgets,
		title: "Orçamentos",
		fields: []query.Field[R]{
			{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
			{Name: "code", Label: "Código", Kind: query.KindString, Value: func(r R) any { return r.Code }},
			{Name: "patient_name", Label: "Paciente", Kind: query.KindString, Value: func(r R) any { return r.PatientName }},
			{Name: "dentist", Label: "Dentista", Kind: query.KindString, Value: func(r R) any { return r.Dentist }},
			{Name: "total", Label: "Total", Kind: query.KindNumber, Value: func(r R) any { return r.Total }},
			{Name: "status", Label: "Situação", Kind: query.KindOrdinal, Ranks: domain.BudgetStatus, Value: func(r R) any { return r.Status }},
			{Name: "priority", Label: "Prioridade", Kind: query.KindOrdinal, Ranks: domain.Priority, Value: func(r R) any { return r.Priority }},
			{Name: "created_at", Label: "Emitido em", Kind: query.KindDate, Value: func(r R) any { return r.CreatedAt }},
			{Name: "valid_until", Label: "Válido até", Kind: query.KindDate, Value: func(r R) any { return r.ValidUntil }},
		},
		searchable: []string{"code", "patient_name", "dentist"},
		filterable: []string{"status", "priority", "dentist"},
		money:      []string{"total"},
		sortKey:    "created_at",
		order:      query.Desc,
		source:     src,
	}
}

func appointmentFields() []query.Field[models.Appointment] {
	type R = models.Appointment
	return []query.Field[R]{
		{Name: "id", Label: "ID", Kind: query.KindNumber, Value: func(r R) any { return r.ID }},
		{Name: "patient_name", Label: "Paciente", Kind: query.KindString, Value: func(r R) any { return r.PatientName }},
		{Name: "dentist", Label: "Dentista", Kind: query.KindString, Value: func(r R) any { return r.Dentist }},
		{Name: "procedure", Label: "Procedimento", Kind: query.KindString, Value: func(r R) any { return r.Procedure }},
		{Name: "date", Label: "Data", Kind: query.KindDate, Value: func(r R) any { return r.Date }},
		{Name: "time", Label: "Horário", Kind: query.KindString, Value: func(r R) any { return r.Time }},
		{Name: "room", Label: "Sala", Kind: query.KindString, Value: func(r R) any { return r.Room }},
		{Name: "status", Label: "Situação", Kind: query.KindOrdinal, Ranks: domain.AppointmentStatus, Value: func(r R) any { return r.Status }},
	}
}

// compareSchedule orders appointments by day, then by time of day.
func compareSchedule(a, b models.Appointment) int {
	if c := cmp.Compare(a.Date, b.Date); c != 0 {
		return c
	}
	return cmp.Compare(a.Time, b.Time)
}

func appointmentScreen(src controller.Source[models.Appointment]) screenConfig[models.Appointment] {
	return screenConfig[models.Appointment]{
		name:       ScreenAppointments,
		title:      "Agenda",
		fields:     appointmentFields(),
		searchable: []string{"patient_name", "dentist", "procedure"},
		filterable: []string{"dentist", "date", "time", "room", "status"},
		sortKey:    "date",
		order:      query.Asc,
		source:     src,
		options:    []query.EngineOption[models.Appointment]{query.WithComparator[models.Appointment]("date", compareSchedule)},
	}
}
