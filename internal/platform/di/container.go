// internal/platform/di/container.go
package di

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	_ "github.com/lib/pq"
	"google.golang.org/api/option"

	httpin "forkful/internal/adapters/in/http"
	fbadapter "forkful/internal/adapters/out/firebase"
	fsrepo "forkful/internal/adapters/out/firestore"
	gcsrepo "forkful/internal/adapters/out/gcs"
	mailout "forkful/internal/adapters/out/mail"
	memrepo "forkful/internal/adapters/out/memory"
	pgrepo "forkful/internal/adapters/out/postgres"
	query "forkful/internal/application/query"
	usecase "forkful/internal/application/usecase"
	cartdom "forkful/internal/domain/cart"
	menudom "forkful/internal/domain/menu"
	userdom "forkful/internal/domain/user"
	appcfg "forkful/internal/infra/config"
	firestoreinfra "forkful/internal/infra/firestore"
	"forkful/internal/infra/identitytoolkit"
	"forkful/internal/platform/portal"
)

// Container is the runtime dependency graph.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager/PG)
// - owns the wired usecases and read models handed to the router
//
// Firestore is strict (error). Firebase Auth, GCS, Secret Manager and the PG
// mirror are best-effort: a missing one disables its surface, the rest of the
// process keeps serving.
type Container struct {
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client
	MenuDB        *sql.DB

	// Repositories
	CartRepo cartdom.Repository
	MenuRepo menudom.Repository
	UserRepo userdom.Repository

	// Application
	CartUC *usecase.CartUsecase
	AuthUC *usecase.AuthUsecase
	MenuQ  *query.MenuQuery
	Portal *portal.Registry

	// Adapters reused by the router's auth middleware
	Accounts *fbadapter.AccountProviderFB

	// Seeder deps
	MenuImages *gcsrepo.MenuImageRepositoryGCS
}

// NewContainer builds the dependency graph from the environment.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("di: config is nil")
	}

	projectID := strings.TrimSpace(cfg.FirestoreProjectID)
	if projectID == "" {
		return nil, errors.New("di: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	c := &Container{
		Config:    cfg,
		ProjectID: projectID,
		Portal:    portal.NewRegistry(),
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds)
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[di] using credentials file for GCP clients")
	} else {
		log.Printf("[di] using Application Default Credentials")
	}

	// 1) Firestore (strict)
	{
		fsw, err := firestoreinfra.NewClient(ctx, projectID, credFile)
		if err != nil {
			return nil, fmt.Errorf("di: firestore init failed (project=%s): %w", projectID, err)
		}
		if err := fsw.Ping(ctx); err != nil {
			log.Printf("[di] WARN: firestore ping failed: %v", err)
		}
		c.Firestore = fsw.Client
	}

	// 2) GCS (best-effort; only seeding writes images)
	{
		gcsClient, err := storage.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: storage.NewClient failed: %v (image seeding disabled)", err)
		} else {
			c.GCS = gcsClient
			c.MenuImages = gcsrepo.NewMenuImageRepositoryGCS(gcsClient, cfg.GCSBucket)
		}
	}

	// 3) Secret Manager (best-effort; web API key fallback)
	{
		sm, err := secretmanager.NewClient(ctx, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: secretmanager.NewClient failed: %v", err)
		} else {
			c.SecretManager = sm
		}
	}

	// 4) Firebase App/Auth (best-effort; auth surface disabled when missing)
	{
		fbCfg := &firebase.Config{ProjectID: strings.TrimSpace(cfg.FirebaseProjectID)}
		fbApp, err := firebase.NewApp(ctx, fbCfg, clientOpts...)
		if err != nil {
			log.Printf("[di] WARN: firebase app init failed: %v", err)
		} else {
			c.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[di] WARN: firebase auth init failed: %v", err)
			} else {
				c.FirebaseAuth = authClient
				log.Printf("[di] Firebase Auth initialized")
			}
		}
	}

	// 5) Optional PG catalog mirror
	if dsn := strings.TrimSpace(cfg.MenuPGDSN); dsn != "" {
		db, err := sql.Open("postgres", dsn)
		if err != nil {
			log.Printf("[di] WARN: sql.Open(postgres) failed: %v (menu served from Firestore)", err)
		} else if err := db.PingContext(ctx); err != nil {
			log.Printf("[di] WARN: postgres ping failed: %v (menu served from Firestore)", err)
			_ = db.Close()
		} else {
			c.MenuDB = db
			log.Printf("[di] PostgreSQL catalog mirror connected")
		}
	}

	c.wire(ctx)
	return c, nil
}

// wire binds repositories and usecases onto whatever clients came up.
func (c *Container) wire(ctx context.Context) {
	// Repositories
	if c.Firestore != nil {
		c.CartRepo = fsrepo.NewCartRepositoryFS(c.Firestore)
		c.UserRepo = fsrepo.NewUserRepositoryFS(c.Firestore)
	} else {
		c.CartRepo = memrepo.NewCartRepositoryMem()
	}

	if c.MenuDB != nil {
		c.MenuRepo = pgrepo.NewMenuRepositoryPG(c.MenuDB)
	} else if c.Firestore != nil {
		c.MenuRepo = fsrepo.NewMenuRepositoryFS(c.Firestore)
	}

	// Application
	c.CartUC = usecase.NewCartUsecase(c.CartRepo)
	if c.MenuRepo != nil {
		c.MenuQ = query.NewMenuQuery(c.MenuRepo)
	}

	if c.FirebaseAuth != nil && c.UserRepo != nil {
		c.Accounts = fbadapter.NewAccountProviderFB(c.FirebaseAuth)

		apiKey := c.resolveWebAPIKey(ctx)
		if apiKey == "" {
			log.Printf("[di] WARN: firebase web api key unavailable (password sign-in disabled)")
		} else {
			signer := identitytoolkit.NewClient(apiKey).
				WithBaseURL(c.Config.IdentityToolkitBaseURL)
			c.AuthUC = usecase.NewAuthUsecase(c.Accounts, signer, c.UserRepo)

			if key := strings.TrimSpace(c.Config.SendGridAPIKey); key != "" && strings.TrimSpace(c.Config.MailFrom) != "" {
				c.AuthUC.WithMailer(mailout.NewSendGridClient(key), c.Config.MailFrom)
				log.Printf("[di] welcome mail enabled from=%s", c.Config.MailFrom)
			}
		}
	}
}

// resolveWebAPIKey prefers the env var, then Secret Manager.
func (c *Container) resolveWebAPIKey(ctx context.Context) string {
	if key := strings.TrimSpace(c.Config.FirebaseWebAPIKey); key != "" {
		return key
	}
	if c.SecretManager == nil {
		return ""
	}

	p := &webAPIKeySecretProviderSM{
		sm:        c.SecretManager,
		projectID: c.ProjectID,
		secretID:  c.Config.FirebaseWebAPIKeySecret,
		version:   "latest",
	}
	key, err := p.Get(ctx)
	if err != nil {
		log.Printf("[di] WARN: web api key secret lookup failed: %v", err)
		return ""
	}
	return key
}

// RouterDeps exposes the wired graph to the HTTP router.
func (c *Container) RouterDeps() httpin.RouterDeps {
	deps := httpin.RouterDeps{
		AuthUC:   c.AuthUC,
		CartUC:   c.CartUC,
		MenuQ:    c.MenuQ,
		Portal:   c.Portal,
		UserRepo: c.UserRepo,
	}
	if c.Accounts != nil {
		deps.TokenVerifier = c.Accounts
	}
	return deps
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Firestore != nil {
		_ = c.Firestore.Close()
	}
	if c.GCS != nil {
		_ = c.GCS.Close()
	}
	if c.SecretManager != nil {
		_ = c.SecretManager.Close()
	}
	if c.MenuDB != nil {
		_ = c.MenuDB.Close()
	}
	return nil
}
