// internal/platform/di/container.go
package di

import (
	"context"
	"errors"
	"log"

	query "github.com/Happ11quokka/Hanyang-Market/internal/application/query"
	usecase "github.com/Happ11quokka/Hanyang-Market/internal/application/usecase"

	outdb "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/db"
	outfs "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/firestore"
	gcso "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/gcs"
	mailout "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/mail"
	outredis "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/redis"

	orderdom "github.com/Happ11quokka/Hanyang-Market/internal/domain/order"

	shared "github.com/Happ11quokka/Hanyang-Market/internal/platform/di/shared"
)

// Container is the market DI container.
// Pure DI: build deps only. No routing branching, no reflection tricks.
type Container struct {
	Infra *shared.Infra

	CatalogUC  *usecase.CatalogUsecase
	CartUC     *usecase.CartUsecase
	CheckoutUC *usecase.CheckoutUsecase

	OrderQ *query.OrderQuery
}

func NewContainer(ctx context.Context, infra *shared.Infra) (*Container, error) {
	if infra == nil {
		var err error
		infra, err = shared.NewInfra(ctx)
		if err != nil {
			return nil, err
		}
	}
	if infra == nil {
		return nil, errors.New("di: shared infra is nil")
	}
	if infra.Config == nil {
		return nil, errors.New("di: shared infra config is nil")
	}

	fsClient := infra.Firestore
	if fsClient == nil {
		return nil, errors.New("di: infra.Firestore is nil")
	}

	c := &Container{Infra: infra}

	// --------------------------------------------------------
	// Firestore repositories
	// --------------------------------------------------------
	productRepo := outfs.NewProductRepositoryFS(fsClient)
	cartRepo := outfs.NewCartRepositoryFS(fsClient)
	orderRepo := outfs.NewOrderRepositoryFS(fsClient)

	// --------------------------------------------------------
	// Optional outbound adapters
	//
	// Interface values must stay nil when the backing client is nil, so
	// the usecases' nil checks keep working. Assign the concrete type
	// only inside the availability branch.
	// --------------------------------------------------------
	images := gcso.NewProductImageResolver(infra.GCS, infra.ProductImageBucket, infra.PlaceholderImagePath)

	var latestCache usecase.LatestCache
	if infra.Redis != nil {
		latestCache = outredis.NewLatestCache(infra.Redis)
	}

	var archiver orderdom.Archiver
	if infra.OrderDB != nil {
		archiver = outdb.NewOrderArchivePG(infra.OrderDB)
	}

	var mailer usecase.ReceiptMailer
	if infra.SendGridAPIKey != "" && infra.MailFrom != "" {
		sg := mailout.NewSendGridClient(infra.SendGridAPIKey)
		mailer = mailout.NewReceiptMailer(sg, infra.MailFrom)
	}

	// --------------------------------------------------------
	// Usecases
	// --------------------------------------------------------
	c.CatalogUC = usecase.NewCatalogUsecase(productRepo, images, latestCache)
	c.CartUC = usecase.NewCartUsecase(cartRepo, productRepo, images)
	c.CheckoutUC = usecase.NewCheckoutUsecase(cartRepo, orderRepo, archiver, mailer)

	// --------------------------------------------------------
	// Queries
	// --------------------------------------------------------
	c.OrderQ = query.NewOrderQuery(orderRepo)

	log.Printf(
		"[di] container built (firestore=%t gcs=%t firebaseAuth=%t latestCache=%t archive=%t mailer=%t)",
		c.Infra.Firestore != nil,
		c.Infra.GCS != nil,
		c.Infra.FirebaseAuth != nil,
		latestCache != nil,
		archiver != nil,
		mailer != nil,
	)

	return c, nil
}
