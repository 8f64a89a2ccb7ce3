package repositories

import (
	"dentalclinic/internal/domain"
	"dentalclinic/internal/domain/models"
)

// Fixture data served by the in-memory sources when DATA_SOURCE=memory.

func SeedPatientAccesses() []models.PatientAccess {
	return []models.PatientAccess{
		{ID: 1, PatientName: "Ana Beatriz Souza", Document: "123.456.789-00", Email: "ana.souza@email.com", AccessGroup: "Pacientes", RiskLevel: "baixo", Active: true, LastAccess: "2024-06-03 09:12"},
		{ID: 2, PatientName: "Bruno Carvalho", Document: "234.567.890-11", Email: "bruno.c@email.com", AccessGroup: "Pacientes", RiskLevel: "medio", Active: true, LastAccess: "2024-06-02 18:40"},
		{ID: 3, PatientName: "Camila Rocha", Document: "345.678.901-22", Email: "camila.rocha@email.com", AccessGroup: "Ortodontia", RiskLevel: "alto", Active: false, LastAccess: "2024-05-21 11:05"},
		{ID: 4, PatientName: "Daniel Ferreira", Document: "456.789.012-33", Email: "daniel.f@email.com", AccessGroup: "Pacientes", RiskLevel: "critico", Active: true, LastAccess: "2024-06-04 07:55"},
		{ID: 5, PatientName: "Eduarda Lima", Document: "567.890.123-44", Email: "eduarda.lima@email.com", AccessGroup: "Implantes", RiskLevel: "baixo", Active: true, LastAccess: "2024-05-30 14:20"},
		{ID: 6, PatientName: "Fábio Martins", Document: "678.901.234-55", Email: "fabio.martins@email.com", AccessGroup: "Ortodontia", RiskLevel: "medio", Active: true, LastAccess: "2024-06-01 16:02"},
		{ID: 7, PatientName: "Gabriela Nunes", Document: "789.012.345-66", Email: "gabi.nunes@email.com", AccessGroup: "Pacientes", RiskLevel: "alto", Active: true, LastAccess: "2024-05-28 10:30"},
		{ID: 8, PatientName: "Henrique Alves", Document: "890.123.456-77", Email: "henrique.alves@email.com", AccessGroup: "Implantes", RiskLevel: "baixo", Active: false, LastAccess: "2024-04-17 08:45"},
		{ID: 9, PatientName: "Isabela Costa", Document: "901.234.567-88", Email: "isabela.costa@email.com", AccessGroup: "Pacientes", RiskLevel: "medio", Active: true, LastAccess: "2024-06-04 12:10"},
		{ID: 10, PatientName: "João Pedro Ribeiro", Document: "012.345.678-99", Email: "joao.ribeiro@email.com", AccessGroup: "Estética", RiskLevel: "critico", Active: true, LastAccess: "2024-06-03 19:25"},
		{ID: 11, PatientName: "Larissa Mendes", Document: "111.222.333-44", Email: "larissa.m@email.com", AccessGroup: "Estética", RiskLevel: "baixo", Active: true, LastAccess: "2024-05-19 15:00"},
		{ID: 12, PatientName: "Marcos Vinícius Teixeira", Document: "222.333.444-55", Email: "marcos.t@email.com", AccessGroup: "Pacientes", RiskLevel: "alto", Active: false, LastAccess: "2024-03-08 09:00"},
	}
}

func SeedReceivables() []models.Receivable {
	return []models.Receivable{
		{ID: 1, Code: "CR-2024-001", PatientName: "Ana Beatriz Souza", Description: "Limpeza e profilaxia", Amount: 180, DueDate: "2024-06-10", Status: "pendente", PaymentMethod: "pix"},
		{ID: 2, Code: "CR-2024-002", PatientName: "Bruno Carvalho", Description: "Restauração em resina (2 faces)", Amount: 320, DueDate: "2024-05-28", Status: "vencido", PaymentMethod: "boleto"},
		{ID: 3, Code: "CR-2024-003", PatientName: "Camila Rocha", Description: "Manutenção aparelho ortodôntico", Amount: 250, DueDate: "2024-06-05", Status: "pago", PaymentMethod: "cartao_credito"},
		{ID: 4, Code: "CR-2024-004", PatientName: "Daniel Ferreira", Description: "Tratamento de canal - molar", Amount: 1200, DueDate: "2024-06-15", Status: "pendente", PaymentMethod: "cartao_credito"},
		{ID: 5, Code: "CR-2024-005", PatientName: "Eduarda Lima", Description: "Implante unitário - parcela 2/6", Amount: 850, DueDate: "2024-06-01", Status: "vencido", PaymentMethod: "boleto"},
		{ID: 6, Code: "CR-2024-006", PatientName: "Fábio Martins", Description: "Clareamento em consultório", Amount: 900, DueDate: "2024-05-20", Status: "pago", PaymentMethod: "pix"},
		{ID: 7, Code: "CR-2024-007", PatientName: "Gabriela Nunes", Description: "Raspagem periodontal", Amount: 400, DueDate: "2024-06-20", Status: "pendente", PaymentMethod: "dinheiro"},
		{ID: 8, Code: "CR-2024-008", PatientName: "Isabela Costa", Description: "Extração de siso", Amount: 550, DueDate: "2024-06-08", Status: "pendente", PaymentMethod: "pix"},
		{ID: 9, Code: "CR-2024-009", PatientName: "João Pedro Ribeiro", Description: "Facetas em porcelana - entrada", Amount: 3500, DueDate: "2024-05-15", Status: "pago", PaymentMethod: "transferencia"},
		{ID: 10, Code: "CR-2024-010", PatientName: "Larissa Mendes", Description: "Consulta de avaliação", Amount: 150, DueDate: "2024-06-12", Status: "pendente", PaymentMethod: "cartao_debito"},
		{ID: 11, Code: "CR-2024-011", PatientName: "Eduarda Lima", Description: "Implante unitário - parcela 3/6", Amount: 850, DueDate: "2024-07-01", Status: "pendente", PaymentMethod: "boleto"},
		{ID: 12, Code: "CR-2024-012", PatientName: "Bruno Carvalho", Description: "Radiografia panorâmica", Amount: 120, DueDate: "2024-05-02", Status: "vencido", PaymentMethod: "dinheiro"},
	}
}

func SeedAccessGroups() []models.AccessGroup {
	return []models.AccessGroup{
		{ID: 1, Name: "Administradores", Description: "Acesso total ao sistema", Members: 2, Active: true, CreatedAt: "2023-01-10"},
		{ID: 2, Name: "Dentistas", Description: "Prontuários, agenda e orçamentos", Members: 6, Active: true, CreatedAt: "2023-01-10"},
		{ID: 3, Name: "Recepção", Description: "Agenda, cadastro de pacientes e cobranças", Members: 4, Active: true, CreatedAt: "2023-02-01"},
		{ID: 4, Name: "Financeiro", Description: "Contas a receber, fornecedores e relatórios", Members: 2, Active: true, CreatedAt: "2023-02-15"},
		{ID: 5, Name: "Pacientes", Description: "Portal do paciente", Members: 6, Active: true, CreatedAt: "2023-03-01"},
		{ID: 6, Name: "Ortodontia", Description: "Pacientes em tratamento ortodôntico", Members: 2, Active: true, CreatedAt: "2023-05-20"},
		{ID: 7, Name: "Implantes", Description: "Pacientes em reabilitação com implantes", Members: 2, Active: true, CreatedAt: "2023-06-11"},
		{ID: 8, Name: "Estética", Description: "Pacientes de estética dental", Members: 2, Active: false, CreatedAt: "2023-08-30"},
		{ID: 9, Name: "Estagiários", Description: "Acesso somente leitura", Members: 0, Active: false, CreatedAt: "2024-02-05"},
	}
}

func SeedSuppliers() []models.Supplier {
	return []models.Supplier{
		{ID: 1, Name: "Dental Cremer", CNPJ: "82.641.325/0001-18", Category: "Materiais", City: "Blumenau", Phone: "(47) 3441-0000", Priority: "Alta", Active: true},
		{ID: 2, Name: "Dentsply Sirona Brasil", CNPJ: "33.113.309/0001-47", Category: "Equipamentos", City: "Petrópolis", Phone: "(24) 2233-1000", Priority: "Crítica", Active: true},
		{ID: 3, Name: "Odonto Express Distribuidora", CNPJ: "11.222.333/0001-81", Category: "Materiais", City: "São Paulo", Phone: "(11) 4002-8922", Priority: "Média", Active: true},
		{ID: 4, Name: "Laboratório Sorriso Perfeito", CNPJ: "22.333.444/0001-92", Category: "Prótese", City: "Curitiba", Phone: "(41) 3333-4444", Priority: "Alta", Active: true},
		{ID: 5, Name: "Biotec Implantes", CNPJ: "33.444.555/0001-03", Category: "Implantes", City: "Belo Horizonte", Phone: "(31) 3555-6677", Priority: "Crítica", Active: true},
		{ID: 6, Name: "Limpa Bem Serviços", CNPJ: "44.555.666/0001-14", Category: "Serviços", City: "São Paulo", Phone: "(11) 3777-8899", Priority: "Baixa", Active: true},
		{ID: 7, Name: "Papelaria Central", CNPJ: "55.666.777/0001-25", Category: "Escritório", City: "Campinas", Phone: "(19) 3212-3434", Priority: "Baixa", Active: false},
		{ID: 8, Name: "RX Imagem Odontológica", CNPJ: "66.777.888/0001-36", Category: "Serviços", City: "São Paulo", Phone: "(11) 3030-4040", Priority: "Média", Active: true},
		{ID: 9, Name: "Ortho Line", CNPJ: "77.888.999/0001-47", Category: "Materiais", City: "Ribeirão Preto", Phone: "(16) 3610-2020", Priority: "Média", Active: true},
	}
}

func SeedProcedures() []models.Procedure {
	procs := []models.Procedure{
		{ID: 1, Code: "PRV-001", Name: "Consulta de avaliação", Category: "Prevenção", Price: 150, DurationMinutes: 30, Active: true},
		{ID: 2, Code: "PRV-002", Name: "Limpeza e profilaxia", Category: "Prevenção", Price: 180, DurationMinutes: 45, Active: true},
		{ID: 3, Code: "PRV-003", Name: "Aplicação de flúor", Category: "Prevenção", Price: 90, DurationMinutes: 20, Active: true},
		{ID: 4, Code: "DEN-001", Name: "Restauração em resina", Category: "Dentística", Price: 220, DurationMinutes: 60, Active: true},
		{ID: 5, Code: "END-001", Name: "Tratamento de canal - molar", Category: "Endodontia", Price: 1200, DurationMinutes: 120, Active: true},
		{ID: 6, Code: "PER-001", Name: "Raspagem periodontal", Category: "Periodontia", Price: 400, DurationMinutes: 60, Active: true},
		{ID: 7, Code: "CIR-001", Name: "Extração simples", Category: "Cirurgia", Price: 300, DurationMinutes: 45, Active: true},
		{ID: 8, Code: "CIR-002", Name: "Extração de siso", Category: "Cirurgia", Price: 550, DurationMinutes: 90, Active: true},
		{ID: 9, Code: "PRT-001", Name: "Coroa em porcelana", Category: "Prótese", Price: 1800, DurationMinutes: 90, Active: true},
		{ID: 10, Code: "ORT-001", Name: "Instalação de aparelho fixo", Category: "Ortodontia", Price: 1500, DurationMinutes: 90, Active: true},
		{ID: 11, Code: "ORT-002", Name: "Manutenção de aparelho", Category: "Ortodontia", Price: 250, DurationMinutes: 30, Active: true},
		{ID: 12, Code: "IMP-001", Name: "Implante unitário", Category: "Implantodontia", Price: 5100, DurationMinutes: 150, Active: true},
		{ID: 13, Code: "EST-001", Name: "Clareamento em consultório", Category: "Estética", Price: 900, DurationMinutes: 90, Active: true},
		{ID: 14, Code: "EST-002", Name: "Faceta em porcelana", Category: "Estética", Price: 2200, DurationMinutes: 120, Active: false},
	}
	for i := range procs {
		procs[i].Color = domain.CategoryColor(procs[i].Category)
	}
	return procs
}

func SeedBudgets() []models.Budget {
	return []models.Budget{
		{ID: 1, Code: "ORC-0101", PatientName: "Daniel Ferreira", Dentist: "Dra. Paula Andrade", Total: 2400, Status: "aprovado", Priority: "Alta", CreatedAt: "2024-05-02", ValidUntil: "2024-06-01"},
		{ID: 2, Code: "ORC-0102", PatientName: "Eduarda Lima", Dentist: "Dr. Ricardo Moura", Total: 5100, Status: "aprovado", Priority: "Crítica", CreatedAt: "2024-04-18", ValidUntil: "2024-05-18"},
		{ID: 3, Code: "ORC-0103", PatientName: "João Pedro Ribeiro", Dentist: "Dra. Paula Andrade", Total: 8800, Status: "enviado", Priority: "Média", CreatedAt: "2024-05-20", ValidUntil: "2024-06-19"},
		{ID: 4, Code: "ORC-0104", PatientName: "Gabriela Nunes", Dentist: "Dr. Ricardo Moura", Total: 400, Status: "rascunho", Priority: "Baixa", CreatedAt: "2024-06-01", ValidUntil: "2024-07-01"},
		{ID: 5, Code: "ORC-0105", PatientName: "Camila Rocha", Dentist: "Dra. Helena Prado", Total: 1500, Status: "recusado", Priority: "Média", CreatedAt: "2024-03-11", ValidUntil: "2024-04-10"},
		{ID: 6, Code: "ORC-0106", PatientName: "Isabela Costa", Dentist: "Dra. Helena Prado", Total: 850, Status: "enviado", Priority: "Alta", CreatedAt: "2024-05-29", ValidUntil: "2024-06-28"},
		{ID: 7, Code: "ORC-0107", PatientName: "Marcos Vinícius Teixeira", Dentist: "Dr. Ricardo Moura", Total: 3200, Status: "expirado", Priority: "Baixa", CreatedAt: "2024-01-15", ValidUntil: "2024-02-14"},
		{ID: 8, Code: "ORC-0108", PatientName: "Bruno Carvalho", Dentist: "Dra. Paula Andrade", Total: 640, Status: "enviado", Priority: "Crítica", CreatedAt: "2024-06-03", ValidUntil: "2024-07-03"},
	}
}

func SeedAppointments() []models.Appointment {
	return []models.Appointment{
		{ID: 1, PatientName: "Ana Beatriz Souza", Dentist: "Dra. Paula Andrade", Procedure: "Limpeza e profilaxia", Date: "2024-06-10", Time: "08:00", Room: "Consultório 1", Status: "confirmado"},
		{ID: 2, PatientName: "Bruno Carvalho", Dentist: "Dra. Paula Andrade", Procedure: "Restauração em resina", Date: "2024-06-10", Time: "09:00", Room: "Consultório 1", Status: "agendado"},
		{ID: 3, PatientName: "Camila Rocha", Dentist: "Dra. Helena Prado", Procedure: "Manutenção de aparelho", Date: "2024-06-10", Time: "09:00", Room: "Consultório 2", Status: "confirmado"},
		{ID: 4, PatientName: "Daniel Ferreira", Dentist: "Dr. Ricardo Moura", Procedure: "Tratamento de canal - molar", Date: "2024-06-10", Time: "10:30", Room: "Consultório 3", Status: "agendado"},
		{ID: 5, PatientName: "Eduarda Lima", Dentist: "Dr. Ricardo Moura", Procedure: "Implante unitário", Date: "2024-06-11", Time: "08:00", Room: "Centro cirúrgico", Status: "confirmado"},
		{ID: 6, PatientName: "Fábio Martins", Dentist: "Dra. Helena Prado", Procedure: "Clareamento em consultório", Date: "2024-06-11", Time: "14:00", Room: "Consultório 2", Status: "cancelado"},
		{ID: 7, PatientName: "Gabriela Nunes", Dentist: "Dra. Paula Andrade", Procedure: "Raspagem periodontal", Date: "2024-06-11", Time: "15:00", Room: "Consultório 1", Status: "agendado"},
		{ID: 8, PatientName: "Isabela Costa", Dentist: "Dr. Ricardo Moura", Procedure: "Extração de siso", Date: "2024-06-12", Time: "09:30", Room: "Centro cirúrgico", Status: "agendado"},
		{ID: 9, PatientName: "João Pedro Ribeiro", Dentist: "Dra. Paula Andrade", Procedure: "Faceta em porcelana", Date: "2024-06-12", Time: "11:00", Room: "Consultório 1", Status: "em_atendimento"},
		{ID: 10, PatientName: "Larissa Mendes", Dentist: "Dra. Helena Prado", Procedure: "Consulta de avaliação", Date: "2024-06-05", Time: "16:00", Room: "Consultório 2", Status: "concluido"},
		{ID: 11, PatientName: "Henrique Alves", Dentist: "Dra. Helena Prado", Procedure: "Consulta de avaliação", Date: "2024-06-11", Time: "14:00", Room: "Consultório 2", Status: "agendado"},
	}
}
