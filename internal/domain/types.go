package domain

import (
	"unicode/utf8"

	"dentalclinic/internal/query"
)

// Rank tables shared by every screen that sorts on these fields.
var (
	RiskLevel = query.NewOrdinal("risk_level", "baixo", "medio", "alto", "critico")

	Priority = query.NewOrdinal("priority", "Baixa", "Média", "Alta", "Crítica")

	// ReceivableStatus orders by urgency of follow-up.
	ReceivableStatus = query.NewOrdinal("receivable_status", "pago", "pendente", "vencido")

	// ProcedureCategory runs from routine care to specialised treatment.
	ProcedureCategory = query.NewOrdinal("procedure_category",
		"Prevenção", "Dentística", "Endodontia", "Periodontia", "Cirurgia", "Prótese", "Ortodontia", "Implantodontia", "Estética")

	AppointmentStatus = query.NewOrdinal("appointment_status", "agendado", "confirmado", "em_atendimento", "concluido", "cancelado")

	BudgetStatus = query.NewOrdinal("budget_status", "rascunho", "enviado", "aprovado", "recusado", "expirado")
)

var categoryPalette = []string{"#2563eb", "#16a34a", "#d97706", "#dc2626", "#7c3aed", "#0891b2"}

// CategoryColor picks a badge color from the length of the category name.
func CategoryColor(category string) string {
	return categoryPalette[utf8.RuneCountInString(category)%len(categoryPalette)]
}
