package usecase

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRepos agrupa los repositorios atados a una misma transacción.
type TxRepos struct {
	Restaurants repository.RestaurantRepository
	Items       repository.ItemRepository
	Receipts    repository.ReceiptRepository
	Access      repository.AccessRepository
	Invites     repository.InviteRepository
}

// TxRunner ejecuta un callback dentro de una transacción de base de datos.
// Lo implementa postgres.TxRunner; los tests usan un runner en memoria.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos TxRepos) error) error
}

// PendingInviteStore guarda el marcador transitorio de una invitación
// canjeada pero aún no aplicada (fase 1 de la saga de invitación). El
// marcador expira por TTL y se consume exactamente una vez.
type PendingInviteStore interface {
	Put(ctx context.Context, code string, ttl time.Duration) error
	// Consume retira el marcador y devuelve si existía.
	Consume(ctx context.Context, code string) (bool, error)
}

// ReceiptImageProcessor valida y normaliza la imagen de un recibo.
// Devuelve domain.ErrUnsupportedMedia si el formato no es aceptado.
type ReceiptImageProcessor interface {
	Process(data []byte) (processed []byte, mime string, err error)
}

// InventoryPDFGenerator genera el reporte PDF del inventario de un
// restaurante. Lo implementa pdf.MarotoReportGenerator.
type InventoryPDFGenerator interface {
	GenerateInventoryPDF(ctx context.Context, restaurant *entity.Restaurant, items []*entity.InventoryItem) ([]byte, error)
}
