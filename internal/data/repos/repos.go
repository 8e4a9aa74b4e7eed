package repos

import (
	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/data/repos/catalog"
	"github.com/solemate/solemate-backend/internal/data/repos/chat"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

type ProductRepo = catalog.ProductRepo
type ChatMessageRepo = chat.ChatMessageRepo

func NewProductRepo(db *gorm.DB, log *logger.Logger) ProductRepo {
	return catalog.NewProductRepo(db, log)
}

func NewChatMessageRepo(db *gorm.DB, log *logger.Logger) ChatMessageRepo {
	return chat.NewChatMessageRepo(db, log)
}
