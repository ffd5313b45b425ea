package cmd

type Config struct {
	NoFlyNames     string
	JobSchedule    string
	PayPalEmail    string
	PayPalPassword string
}
