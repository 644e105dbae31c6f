package postgres

import "time"

// unixOrZero converte o timestamp para unix preservando o zero do
// time.Time. O zero de time.Time vira um unix negativo, não zero, e um
// campo não-zero impede o autoCreateTime/autoUpdateTime do GORM de
// preencher o valor no insert.
func unixOrZero(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key"`
	Name         string `gorm:"type:varchar(500);not null"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Document     string `gorm:"type:varchar(20);index"`
	Phone        string `gorm:"type:varchar(20);index"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(50);not null;index"`
	CreatedAt    int64  `gorm:"autoCreateTime;index"`
	UpdatedAt    int64  `gorm:"autoUpdateTime"`
	DeletedAt    *int64 `gorm:"index"` // Soft delete
}

func (UserModel) TableName() string {
	return "users"
}

// TravelPackageModel é o model GORM para pacotes de viagem.
// O título é único entre pacotes não deletados; como o soft delete
// impede um unique index simples, a unicidade é checada no service.
type TravelPackageModel struct {
	ID          string  `gorm:"type:uuid;primary_key"`
	Title       string  `gorm:"type:varchar(255);not null;index"`
	Description string  `gorm:"type:text"`
	Price       float64 `gorm:"type:decimal(10,2);not null"`
	Duration    int     `gorm:"not null"`
	MaxPeople   int     `gorm:"not null"`
	CreatedAt   int64   `gorm:"autoCreateTime;index"`
	UpdatedAt   int64   `gorm:"autoUpdateTime"`
	DeletedAt   *int64  `gorm:"index"` // Soft delete

	Dates []PackageDateModel `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	Media []MediaModel       `gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
}

func (TravelPackageModel) TableName() string {
	return "travel_packages"
}

// PackageDateModel é o model GORM para datas reserváveis de um pacote
type PackageDateModel struct {
	ID           string    `gorm:"type:uuid;primary_key"`
	PackageID    string    `gorm:"type:uuid;not null;index"`
	StartDate    time.Time `gorm:"not null"`
	EndDate      time.Time `gorm:"not null"`
	QtdAvailable int       `gorm:"not null"`
}

func (PackageDateModel) TableName() string {
	return "package_dates"
}

// MediaModel é o model GORM para mídias (fotos/vídeos) de um pacote
type MediaModel struct {
	ID        string `gorm:"type:uuid;primary_key"`
	PackageID string `gorm:"type:uuid;not null;index"`
	URL       string `gorm:"type:varchar(500);not null"`
	Kind      string `gorm:"type:varchar(50)"`
}

func (MediaModel) TableName() string {
	return "media"
}

// ReservationModel é o model GORM para reservas.
// O unique index (user_id, package_date_id) é o backstop da checagem
// consultiva de duplicidade feita no service: sob corrida, o insert
// perdedor recebe a violação e ela vira DuplicateRegistryError.
type ReservationModel struct {
	ID              string     `gorm:"type:uuid;primary_key"`
	UserID          string     `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_user_date"`
	PackageDateID   string     `gorm:"type:uuid;not null;uniqueIndex:idx_reservations_user_date"`
	ReservationDate time.Time  `gorm:"not null"`
	Situation       string     `gorm:"type:varchar(20);not null;index"`
	CancelledDate   *time.Time `gorm:""`
	CreatedAt       int64      `gorm:"autoCreateTime;index"`
	UpdatedAt       int64      `gorm:"autoUpdateTime"`

	Travelers []TravelerModel `gorm:"foreignKey:ReservationID;constraint:OnDelete:CASCADE"`
}

func (ReservationModel) TableName() string {
	return "reservations"
}

// TravelerModel é o model GORM para viajantes de uma reserva.
// O par (email, cpf) é único na tabela inteira, não por reserva.
type TravelerModel struct {
	ID            string    `gorm:"type:uuid;primary_key"`
	ReservationID string    `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"type:varchar(500);not null"`
	Email         string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_travelers_email_cpf"`
	CPF           string    `gorm:"type:varchar(11);not null;uniqueIndex:idx_travelers_email_cpf"`
	BirthDate     time.Time `gorm:"not null"`
}

func (TravelerModel) TableName() string {
	return "travelers"
}

// PaymentModel é o model GORM para pagamentos.
// Sem foreign key constraint para reservations: o pagamento sobrevive
// à exclusão da reserva (retido para histórico).
type PaymentModel struct {
	ID                string   `gorm:"type:uuid;primary_key"`
	ReservationID     string   `gorm:"type:uuid;not null;uniqueIndex"`
	ValuePaid         float64  `gorm:"type:decimal(10,2);not null"`
	PaymentMethod     string   `gorm:"type:varchar(20);not null"`
	Status            string   `gorm:"type:varchar(20);not null;index"`
	Tax               float64  `gorm:"type:decimal(10,2)"`
	Installment       *int     `gorm:""`
	InstallmentAmount *float64 `gorm:"type:decimal(10,2)"`
	CreatedAt         int64    `gorm:"autoCreateTime;index"`
	UpdatedAt         int64    `gorm:"autoUpdateTime"`
}

func (PaymentModel) TableName() string {
	return "payments"
}

// RatingModel é o model GORM para avaliações (uma por reserva)
type RatingModel struct {
	ID            string `gorm:"type:uuid;primary_key"`
	ReservationID string `gorm:"type:uuid;not null;uniqueIndex"`
	Rate          int    `gorm:"not null"`
	Comment       string `gorm:"type:text"`
	CreatedAt     int64  `gorm:"autoCreateTime;index"`
}

func (RatingModel) TableName() string {
	return "ratings"
}
