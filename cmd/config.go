package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	GatewayBaseURL   string
	GatewayKeyID     string
	GatewayKeySecret string

	CatalogBaseURL      string
	MeasurementsBaseURL string
	NotifyWebhookURL    string
}
