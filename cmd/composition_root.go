package cmd

import (
	"log/slog"

	"shiprates/internal/adapters/out/canadapost"
	"shiprates/internal/adapters/out/fxrate"
	"shiprates/internal/core/application/usecases/commands"
	"shiprates/internal/core/application/usecases/queries"
	"shiprates/internal/core/domain/model/kernel"
	"shiprates/internal/core/domain/services"
	"shiprates/internal/core/ports"
)

const (
	defaultOriginCountry  = "CA"
	defaultPartnerCountry = "US"
)

type CompositionRoot struct {
	config        Config
	logger        *slog.Logger
	classifier    kernel.Classifier
	exchangeRates ports.ExchangeRateProvider
	carrier       ports.CarrierGateway
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	originCountry := config.OriginCountry
	if originCountry == "" {
		originCountry = defaultOriginCountry
	}
	partnerCountry := config.PartnerCountry
	if partnerCountry == "" {
		partnerCountry = defaultPartnerCountry
	}
	classifier, err := kernel.NewClassifier(originCountry, partnerCountry)
	if err != nil {
		panic("invalid market configuration: " + err.Error())
	}

	return CompositionRoot{
		config:        config,
		logger:        logger,
		classifier:    classifier,
		exchangeRates: fxrate.NewProvider(config.ExchangeRateURL, logger),
		carrier: canadapost.NewClient(
			canadapost.Environment(config.CanadaPostEnvironment),
			canadapost.Credentials{
				CustomerNumber: config.CanadaPostCustomer,
				ContractID:     config.CanadaPostContract,
				Username:       config.CanadaPostUsername,
				Password:       config.CanadaPostPassword,
			},
			logger,
		),
	}
}

func (c *CompositionRoot) CreateGetShippingRatesQueryHandler() queries.GetShippingRatesQueryHandler {
	return queries.NewGetShippingRatesQueryHandler(
		c.config.OriginPostalCode,
		c.classifier,
		services.NewLettermailCalculator(),
		services.NewRateNormalizer(),
		c.exchangeRates,
		c.carrier,
		c.logger,
	)
}

func (c *CompositionRoot) CreateRefreshExchangeRateCommandHandler() commands.RefreshExchangeRateCommandHandler {
	return commands.NewRefreshExchangeRateCommandHandler(c.exchangeRates, c.logger)
}
