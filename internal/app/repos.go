package app

import (
	"gorm.io/gorm"

	"github.com/solemate/solemate-backend/internal/data/repos"
	"github.com/solemate/solemate-backend/internal/pkg/logger"
)

type Repos struct {
	Product repos.ProductRepo
	Message repos.ChatMessageRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	return Repos{
		Product: repos.NewProductRepo(db, log),
		Message: repos.NewChatMessageRepo(db, log),
	}
}
