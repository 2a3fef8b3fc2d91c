package models

import "time"

// ContactStatus tracks the lifecycle state of a lead. Only StatusNovo is
// assigned today; transitions belong to a future CRM integration.
type ContactStatus string

const StatusNovo ContactStatus = "Novo"

// Contact preference values accepted on submission.
const (
	PreferenciaTelefone = "Telefone"
	PreferenciaEmail    = "E-mail"
	PreferenciaWhatsApp = "WhatsApp"
)

// Best-contact-time values accepted on submission.
const (
	HorarioManha    = "Manhã"
	HorarioTarde    = "Tarde"
	HorarioNoite    = "Noite"
	HorarioQualquer = "Qualquer horário"
)

// Subject values accepted on submission.
const (
	AssuntoInformacoes   = "Informações gerais"
	AssuntoTestDrive     = "Agendamento de test drive"
	AssuntoNegociacao    = "Negociação de preço"
	AssuntoFinanciamento = "Financiamento"
	AssuntoOutro         = "Outro"
)

// ContactForm is the canonical stored lead record.
type ContactForm struct {
	ID                 int           `db:"id" json:"idContactForm"`
	Protocolo          string        `db:"protocolo" json:"protocolo"`
	Status             ContactStatus `db:"status" json:"status"`
	DateCreated        time.Time     `db:"date_created" json:"dateCreated"`
	IDVehicle          int           `db:"id_vehicle" json:"idVehicle"`
	NomeCompleto       string        `db:"nome_completo" json:"nomeCompleto"`
	Email              string        `db:"email" json:"email"`
	Telefone           string        `db:"telefone" json:"telefone"`
	PreferenciaContato string        `db:"preferencia_contato" json:"preferenciaContato"`
	MelhorHorario      string        `db:"melhor_horario" json:"melhorHorario"`
	Assunto            string        `db:"assunto" json:"assunto"`
	Mensagem           string        `db:"mensagem" json:"mensagem"`
	Financiamento      bool          `db:"financiamento" json:"financiamento"`
	ReceberNovidades   bool          `db:"receber_novidades" json:"receberNovidades"`
	IPUsuario          string        `db:"ip_usuario" json:"-"`
}

// ContactFormReceipt is the response subset returned on successful
// submission: identifiers plus the referenced vehicle's display fields.
type ContactFormReceipt struct {
	IDContactForm int           `json:"idContactForm"`
	Protocolo     string        `json:"protocolo"`
	Status        ContactStatus `json:"status"`
	DateCreated   time.Time     `json:"dateCreated"`
	Modelo        string        `json:"modelo"`
	Marca         string        `json:"marca"`
	AnoModelo     int           `json:"anoModelo"`
}
