package services

// ServiceContainer bundles every service facade the handlers depend on.
type ServiceContainer struct {
	User      UserSvcFacade
	Client    ClientSvcFacade
	Invoice   InvoiceSvcFacade
	Reporting ReportingSvcFacade
}
