// internal/platform/di/shared/infra.go
package shared

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"cloud.google.com/go/firestore"
	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	secretmanagerpb "cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"cloud.google.com/go/storage"

	firebase "firebase.google.com/go/v4"
	firebaseauth "firebase.google.com/go/v4/auth"
	goredis "github.com/redis/go-redis/v9"
	"google.golang.org/api/option"

	outdb "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/db"
	outredis "github.com/Happ11quokka/Hanyang-Market/internal/adapters/out/redis"
	appcfg "github.com/Happ11quokka/Hanyang-Market/internal/infra/config"
)

// Infra is shared runtime infrastructure for DI.
// - owns external clients (Firestore/FirebaseAuth/GCS/SecretManager/Redis/Postgres)
// - owns env/config-resolved runtime settings (bucket name, placeholder path, mail sender)
//
// Infra must NOT depend on handlers, usecases, or queries.
type Infra struct {
	// Config
	Config    *appcfg.Config
	ProjectID string

	// Clients (owned; Close-managed)
	Firestore     *firestore.Client
	GCS           *storage.Client
	FirebaseApp   *firebase.App
	FirebaseAuth  *firebaseauth.Client
	SecretManager *secretmanager.Client
	Redis         *goredis.Client
	OrderDB       *sql.DB

	// Runtime settings (resolved once)
	ProductImageBucket   string
	PlaceholderImagePath string
	MailFrom             string
	SendGridAPIKey       string
	AllowedOrigin        string
}

// NewInfra initializes shared infra.
// Firestore is strict (return error).
// GCS, Firebase/Auth, SecretManager, Redis and Postgres are best-effort
// (warn + continue); the features they back degrade instead of failing boot.
func NewInfra(ctx context.Context) (*Infra, error) {
	cfg := appcfg.Load()
	if cfg == nil {
		return nil, errors.New("shared.infra: config is nil")
	}

	projectID := resolveProjectID(cfg)
	if projectID == "" {
		// If empty, Firestore/NewApp become unstable; treat as hard error.
		return nil, errors.New("shared.infra: projectID is empty (set FIRESTORE_PROJECT_ID or GCP_PROJECT_ID)")
	}

	inf := &Infra{
		Config:    cfg,
		ProjectID: projectID,

		ProductImageBucket:   strings.TrimSpace(cfg.ProductImageBucket),
		PlaceholderImagePath: strings.TrimSpace(cfg.PlaceholderImagePath),
		MailFrom:             strings.TrimSpace(cfg.MailFrom),
		AllowedOrigin:        strings.TrimSpace(cfg.AllowedOrigin),
	}

	// Credentials file (optional; mainly for local dev)
	credFile := strings.TrimSpace(cfg.FirestoreCredentialsFile)
	if credFile == "" {
		credFile = strings.TrimSpace(cfg.GCPCreds) // GOOGLE_APPLICATION_CREDENTIALS
	}
	var clientOpts []option.ClientOption
	if credFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(credFile))
		log.Printf("[shared.infra] Using credentials file for GCP clients: %s", redactPath(credFile))
	} else {
		log.Printf("[shared.infra] Using Application Default Credentials (no credentials file configured)")
	}

	// 1) Firestore (strict)
	{
		var fsClient *firestore.Client
		var err error
		if len(clientOpts) > 0 {
			fsClient, err = firestore.NewClient(ctx, inf.ProjectID, clientOpts...)
		} else {
			fsClient, err = firestore.NewClient(ctx, inf.ProjectID)
		}
		if err != nil {
			return nil, fmt.Errorf("shared.infra: firestore.NewClient failed (project=%s): %w", inf.ProjectID, err)
		}
		inf.Firestore = fsClient
		log.Printf("[shared.infra] Firestore connected project=%s", inf.ProjectID)
	}

	// 2) GCS (best-effort; product images fall back to the placeholder path)
	{
		var gcsClient *storage.Client
		var err error
		if len(clientOpts) > 0 {
			gcsClient, err = storage.NewClient(ctx, clientOpts...)
		} else {
			gcsClient, err = storage.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[shared.infra] WARN: storage.NewClient failed: %v (product image resolution disabled)", err)
			gcsClient = nil
		} else {
			log.Printf("[shared.infra] GCS storage client initialized")
		}
		inf.GCS = gcsClient
	}
	if inf.ProductImageBucket == "" {
		log.Printf("[shared.infra] WARN: PRODUCT_IMAGE_BUCKET is empty (bare object paths resolve to the placeholder)")
	}

	// 3) Firebase App/Auth (best-effort; protected endpoints fail closed without it)
	{
		var fbApp *firebase.App
		var err error

		fbCfg := &firebase.Config{ProjectID: inf.ProjectID}
		if len(clientOpts) > 0 {
			fbApp, err = firebase.NewApp(ctx, fbCfg, clientOpts...)
		} else {
			fbApp, err = firebase.NewApp(ctx, fbCfg)
		}

		if err != nil {
			log.Printf("[shared.infra] WARN: firebase app init failed: %v", err)
		} else {
			inf.FirebaseApp = fbApp
			authClient, err := fbApp.Auth(ctx)
			if err != nil {
				log.Printf("[shared.infra] WARN: firebase auth init failed: %v", err)
			} else {
				inf.FirebaseAuth = authClient
				log.Printf("[shared.infra] Firebase Auth initialized")
			}
		}
	}

	// 4) Optional: Secret Manager client (used to resolve the SendGrid key)
	{
		var sm *secretmanager.Client
		var err error
		if len(clientOpts) > 0 {
			sm, err = secretmanager.NewClient(ctx, clientOpts...)
		} else {
			sm, err = secretmanager.NewClient(ctx)
		}
		if err != nil {
			log.Printf("[shared.infra] WARN: secretmanager.NewClient failed: %v (SecretManager-dependent features may be disabled)", err)
			sm = nil
		}
		inf.SecretManager = sm
	}

	// 5) Optional: Redis (latest-updates cache)
	if addr := strings.TrimSpace(cfg.RedisAddr); addr != "" {
		rc, err := outredis.NewClient(ctx, addr, cfg.RedisPassword)
		if err != nil {
			log.Printf("[shared.infra] WARN: redis connect failed addr=%s: %v (latest cache disabled)", addr, err)
		} else {
			inf.Redis = rc
			log.Printf("[shared.infra] Redis connected addr=%s", addr)
		}
	} else {
		log.Printf("[shared.infra] Redis not configured (REDIS_ADDR empty)")
	}

	// 6) Optional: Postgres order archive
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		db, err := outdb.Open(dsn)
		if err != nil {
			log.Printf("[shared.infra] WARN: postgres connect failed: %v (order archive disabled)", err)
		} else {
			inf.OrderDB = db
			log.Printf("[shared.infra] Postgres order archive connected")
		}
	} else {
		log.Printf("[shared.infra] Postgres not configured (DATABASE_URL empty)")
	}

	// 7) SendGrid API key (env first, Secret Manager fallback)
	inf.SendGridAPIKey = resolveSendGridKey(ctx, cfg, inf.SecretManager, inf.ProjectID)
	if inf.SendGridAPIKey == "" {
		log.Printf("[shared.infra] WARN: SendGrid key not resolved (receipt mail disabled)")
	}

	// Final sanity check (panic prevention)
	if inf.Firestore == nil {
		_ = inf.Close()
		return nil, errors.New("shared.infra: firestore client is nil after initialization (unexpected)")
	}

	return inf, nil
}

func (i *Infra) Close() error {
	if i == nil {
		return nil
	}
	if i.Firestore != nil {
		_ = i.Firestore.Close()
	}
	if i.GCS != nil {
		_ = i.GCS.Close()
	}
	if i.SecretManager != nil {
		_ = i.SecretManager.Close()
	}
	if i.Redis != nil {
		_ = i.Redis.Close()
	}
	if i.OrderDB != nil {
		_ = i.OrderDB.Close()
	}
	return nil
}

func resolveProjectID(cfg *appcfg.Config) string {
	// Priority:
	// 1) cfg.FirestoreProjectID (resolved by config.Load)
	// 2) FIRESTORE_PROJECT_ID
	// 3) GCP_PROJECT_ID
	// 4) GOOGLE_CLOUD_PROJECT (often set in Cloud Run)
	// 5) FIREBASE_PROJECT_ID (fallback)
	if cfg != nil {
		if v := strings.TrimSpace(cfg.FirestoreProjectID); v != "" {
			return v
		}
	}

	for _, k := range []string{
		"FIRESTORE_PROJECT_ID",
		"GCP_PROJECT_ID",
		"GOOGLE_CLOUD_PROJECT",
		"FIREBASE_PROJECT_ID",
	} {
		if v := strings.TrimSpace(os.Getenv(k)); v != "" {
			return v
		}
	}

	return ""
}

// resolveSendGridKey prefers the env var; when SENDGRID_SECRET_NAME is set and
// a Secret Manager client is available, the latest version of that secret is
// read instead. Failures degrade to an empty key (mail disabled).
func resolveSendGridKey(ctx context.Context, cfg *appcfg.Config, sm *secretmanager.Client, projectID string) string {
	if k := strings.TrimSpace(cfg.SendGridAPIKey); k != "" {
		return k
	}

	secretName := strings.TrimSpace(cfg.SendGridSecretName)
	if secretName == "" || sm == nil || strings.TrimSpace(projectID) == "" {
		return ""
	}

	name := secretName
	if !strings.HasPrefix(name, "projects/") {
		name = fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretName)
	}

	resp, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		log.Printf("[shared.infra] WARN: AccessSecretVersion failed (%s): %v", name, err)
		return ""
	}
	if resp == nil || resp.Payload == nil {
		log.Printf("[shared.infra] WARN: empty secret payload (%s)", name)
		return ""
	}
	return strings.TrimSpace(string(resp.Payload.Data))
}

func redactPath(p string) string {
	// Do not log full path (Windows/Unix compatible light masking)
	p = strings.TrimSpace(p)
	if p == "" {
		return ""
	}
	p = strings.ReplaceAll(p, "\\", "/")
	parts := strings.Split(p, "/")
	if len(parts) == 0 {
		return "***"
	}
	last := parts[len(parts)-1]
	if last == "" {
		return "***"
	}
	return "***" + "/" + last
}
