package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.MustParse("pt-BR")

	message.SetString(lang, "nav.dashboard", "Painel")
	message.SetString(lang, "nav.doctors", "Médicos")
	message.SetString(lang, "nav.patients", "Pacientes")
	message.SetString(lang, "nav.appointments", "Consultas")
	message.SetString(lang, "nav.treatments", "Tratamentos")
	message.SetString(lang, "nav.console", "Console SQL")

	message.SetString(lang, "title.dashboard", "Painel")
	message.SetString(lang, "title.doctors", "Médicos")
	message.SetString(lang, "title.patients", "Pacientes")
	message.SetString(lang, "title.appointments", "Consultas")
	message.SetString(lang, "title.treatments", "Tratamentos")
	message.SetString(lang, "title.console", "Console SQL")

	message.SetString(lang, "dashboard.doctors", "Médicos")
	message.SetString(lang, "dashboard.patients", "Pacientes")
	message.SetString(lang, "dashboard.appointments", "Consultas")
	message.SetString(lang, "dashboard.treatments", "Tratamentos")
	message.SetString(lang, "dashboard.scheduled", "Visitas agendadas")
	message.SetString(lang, "dashboard.revenue", "Receita")
	message.SetString(lang, "dashboard.recent", "Consultas recentes")

	message.SetString(lang, "doctors.add", "Adicionar médico")
	message.SetString(lang, "doctors.first_name", "Nome")
	message.SetString(lang, "doctors.specialty", "Especialidade")
	message.SetString(lang, "doctors.hourly_rate", "Valor hora ($)")
	message.SetString(lang, "doctors.save", "Salvar médico")

	message.SetString(lang, "patients.register", "Cadastrar paciente")
	message.SetString(lang, "patients.name", "Nome completo")
	message.SetString(lang, "patients.phone", "Telefone")
	message.SetString(lang, "patients.save", "Cadastrar paciente")

	message.SetString(lang, "appointments.book", "Agendar consulta")
	message.SetString(lang, "appointments.patient", "Paciente")
	message.SetString(lang, "appointments.doctor", "Médico")
	message.SetString(lang, "appointments.date", "Data da consulta")
	message.SetString(lang, "appointments.status", "Situação")
	message.SetString(lang, "appointments.save", "Agendar consulta")
	message.SetString(lang, "appointments.update_status", "Atualizar situação")
	message.SetString(lang, "appointments.appointment", "Consulta")
	message.SetString(lang, "appointments.apply", "Aplicar")

	message.SetString(lang, "treatments.record", "Adicionar tratamento (após a consulta)")
	message.SetString(lang, "treatments.appointment", "Consulta")
	message.SetString(lang, "treatments.service", "Serviço")
	message.SetString(lang, "treatments.cost", "Custo ($)")
	message.SetString(lang, "treatments.save", "Registrar tratamento")

	message.SetString(lang, "console.query", "Consulta")
	message.SetString(lang, "console.run", "Executar consulta")
	message.SetString(lang, "console.warning", "Zona de perigo - acesso SQL completo ao banco em produção.")
	message.SetString(lang, "console.rows_returned", "%d linhas retornadas.")

	message.SetString(lang, "table.empty", "Nenhum registro ainda.")

	message.SetString(lang, "error.required_fields", "Todos os campos obrigatórios devem ser preenchidos.")
	message.SetString(lang, "error.invalid_date", "A data da consulta deve usar o formato aaaa-mm-dd.")
	message.SetString(lang, "error.invalid_selection", "Selecione uma entrada válida da lista.")
	message.SetString(lang, "error.invalid_number", "Informe um número válido e não negativo.")
	message.SetString(lang, "error.database", "Erro de banco de dados: %v")

	message.SetString(lang, "success.doctor_added", "Médico adicionado!")
	message.SetString(lang, "success.patient_registered", "Paciente %s cadastrado!")
	message.SetString(lang, "success.appointment_booked", "Consulta agendada!")
	message.SetString(lang, "success.status_updated", "Situação da consulta atualizada!")
	message.SetString(lang, "success.treatment_recorded", "Tratamento registrado!")
}
