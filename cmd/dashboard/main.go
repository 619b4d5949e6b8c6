package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/integrator/contoso/contosoclient"
	"github.com/vfg2006/contoso-dashboard-client/infrastructure/repository"
	"github.com/vfg2006/contoso-dashboard-client/internal/config"
	"github.com/vfg2006/contoso-dashboard-client/internal/domain"
	"github.com/vfg2006/contoso-dashboard-client/internal/scheduler"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/notifying"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/orchestrating"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/sessioning"
	"github.com/vfg2006/contoso-dashboard-client/internal/usecases/shopping"
	"github.com/vfg2006/contoso-dashboard-client/pkg/log"
	"github.com/vfg2006/contoso-dashboard-client/pkg/utils"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)

	// Logs vão para arquivo para não poluir a tela interativa
	log.ConfigureOutput(cfg.App.LogFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sessionRepo := repository.NewFileSessionRepository(cfg.Session.FilePath)

	contosoClient := contosoclient.NewClient(cfg)
	contosoIntegrator := contoso.New(cfg, contosoClient)

	sessions := sessioning.NewService(sessionRepo, contosoIntegrator)
	orchestrator := orchestrating.NewService(contosoIntegrator, sessions)
	storefront := shopping.NewService(cfg, contosoIntegrator, sessions)
	cart := shopping.NewCart()
	notifications := notifying.NewCenter(seedNotifications())

	refreshService := scheduler.NewDashboardRefreshService(sessions, orchestrator, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de atualização do dashboard")
	}

	app := &application{
		sessions:      sessions,
		orchestrator:  orchestrator,
		integrator:    contosoIntegrator,
		storefront:    storefront,
		cart:          cart,
		notifications: notifications,
		refresher:     refreshService,
		in:            bufio.NewReader(os.Stdin),
	}

	app.run(ctx)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

type application struct {
	sessions      sessioning.SessionManager
	orchestrator  orchestrating.Orchestrator
	integrator    contoso.Integrator
	storefront    shopping.Storefront
	cart          *shopping.Cart
	notifications *notifying.Center
	refresher     *scheduler.DashboardRefreshService
	in            *bufio.Reader
}

func (a *application) run(ctx context.Context) {
	renderBanner()

	session := a.sessions.Restore()
	if session.LoggedIn() {
		renderInfo(fmt.Sprintf("Sessão restaurada para %s", session.DisplayName))
	}

	for {
		session = a.sessions.Current()

		if !session.LoggedIn() {
			if !a.loginScreen(ctx) {
				return
			}
			continue
		}

		if session.IsAdministrator() {
			a.dashboardLoop(ctx)
		} else {
			a.storeLoop(ctx)
		}

		if a.sessions.Current().LoggedIn() {
			// Saída explícita com sessão ativa encerra o programa
			return
		}
	}
}

// loginScreen retorna false quando o usuário pede para sair do programa
func (a *application) loginScreen(ctx context.Context) bool {
	for {
		renderMenu("Acesso", []string{"1. Entrar", "2. Criar conta", "0. Sair"})

		switch a.prompt("Opção") {
		case "1":
			username := a.prompt("Usuário")
			password := a.prompt("Senha")

			session, err := a.sessions.Login(ctx, username, password)
			if err != nil {
				renderLoginError(err)
				continue
			}

			renderSuccess(fmt.Sprintf("Bem-vindo, %s", session.DisplayName))
			return true
		case "2":
			a.registerScreen(ctx)
		case "0":
			return false
		}
	}
}

func (a *application) registerScreen(ctx context.Context) {
	profile := domain.RegisterProfile{
		FirstName: a.prompt("Nome"),
		LastName:  a.prompt("Sobrenome"),
		Email:     a.prompt("E-mail"),
		Password:  a.prompt("Senha"),
	}

	if err := a.sessions.Register(ctx, profile); err != nil {
		renderError(err)
		return
	}

	renderSuccess("Conta criada. Entre com suas credenciais.")
}

func (a *application) dashboardLoop(ctx context.Context) {
	snapshot, err := a.refresher.RefreshNow(ctx)
	if err == nil {
		renderSnapshot(snapshot)
	} else {
		a.reportDashboardError(err)
	}

	for a.sessions.Current().IsAdministrator() {
		renderMenu("Painel administrativo", []string{
			"1. Alterar período (" + a.refresher.Filter().QueryValue() + ")",
			"2. Atualizar agora",
			"3. Mapa de clientes por país/região",
			"4. Top produtos",
			"5. Vendas globais",
			"6. Notificações (" + strconv.Itoa(a.notifications.Count()) + ")",
			"7. Sair da conta",
			"0. Fechar",
		})

		switch a.prompt("Opção") {
		case "1":
			a.changeFilter(ctx)
		case "2":
			a.refreshDashboard(ctx)
		case "3":
			a.showGeoTreemap()
		case "4":
			a.showTopProducts(ctx)
		case "5":
			a.showGlobalSales(ctx)
		case "6":
			a.notificationScreen()
		case "7":
			a.logout()
			return
		case "0":
			return
		}
	}

	// Perfil deixou de ser administrador: a sessão caiu durante uma leitura
	renderInfo("Sessão expirada. Entre novamente.")
}

func (a *application) changeFilter(ctx context.Context) {
	options := make([]string, 0, len(domain.AvailableDateRanges))
	for i, f := range domain.AvailableDateRanges {
		options = append(options, fmt.Sprintf("%d. %s", i+1, f.QueryValue()))
	}
	renderMenu("Período", options)

	choice, err := strconv.Atoi(a.prompt("Opção"))
	if err != nil || choice < 1 || choice > len(domain.AvailableDateRanges) {
		renderInfo("Opção inválida, período mantido")
		return
	}

	a.refresher.SetFilter(domain.AvailableDateRanges[choice-1])
	a.refreshDashboard(ctx)
}

func (a *application) refreshDashboard(ctx context.Context) {
	snapshot, err := a.refresher.RefreshNow(ctx)
	if err != nil {
		a.reportDashboardError(err)
		return
	}

	renderSnapshot(snapshot)
}

func (a *application) reportDashboardError(err error) {
	switch {
	case orchestrating.IsStaleGeneration(err):
		// Uma geração mais nova assume a tela, nada a reportar
	case orchestrating.IsUnauthorized(err):
		// Leituras fora do orquestrador também derrubam a sessão no 401;
		// Logout é idempotente quando o orquestrador já derrubou
		a.sessions.Logout()
		a.storefront.InvalidateCache()
		renderInfo("Sessão expirada. Entre novamente.")
	case orchestrating.IsUnreachable(err):
		renderError(err)
		renderInfo("Servidor indisponível. Use a opção de atualizar para tentar de novo.")
	default:
		renderError(err)
	}
}

func (a *application) showGeoTreemap() {
	snapshot := a.orchestrator.LastSnapshot()
	if snapshot == nil {
		renderInfo("Nenhum snapshot carregado ainda")
		return
	}

	renderGeoTreemap(snapshot.GeoCustomers)
}

func (a *application) showTopProducts(ctx context.Context) {
	session := a.sessions.Current()
	if !session.LoggedIn() {
		return
	}

	products, err := a.integrator.FetchTopProducts(ctx, session.Token, a.refresher.Filter())
	if err != nil {
		a.reportDashboardError(err)
		return
	}

	renderTopProducts(products)
}

func (a *application) showGlobalSales(ctx context.Context) {
	session := a.sessions.Current()
	if !session.LoggedIn() {
		return
	}

	sales, err := a.integrator.FetchGlobalSales(ctx, session.Token, a.refresher.Filter())
	if err != nil {
		a.reportDashboardError(err)
		return
	}

	renderGlobalSales(sales)
}

func (a *application) storeLoop(ctx context.Context) {
	for a.sessions.Current().IsCustomer() {
		renderMenu("Loja", []string{
			"1. Catálogo",
			"2. Destaques",
			"3. Carrinho (" + strconv.Itoa(a.cart.Count()) + " itens)",
			"4. Finalizar compra",
			"5. Minhas compras",
			"6. Notificações (" + strconv.Itoa(a.notifications.Count()) + ")",
			"7. Sair da conta",
			"0. Fechar",
		})

		switch a.prompt("Opção") {
		case "1":
			a.catalogScreen(ctx)
		case "2":
			a.featuredScreen(ctx)
		case "3":
			renderCart(a.cart.Lines(), a.cart.Total())
		case "4":
			a.checkoutScreen()
		case "5":
			a.purchasesScreen(ctx)
		case "6":
			a.notificationScreen()
		case "7":
			a.logout()
			return
		case "0":
			return
		}
	}

	renderInfo("Sessão expirada. Entre novamente.")
}

func (a *application) catalogScreen(ctx context.Context) {
	session := a.sessions.Current()

	products, err := a.storefront.Catalog(ctx, session)
	if err != nil {
		renderError(err)
		return
	}

	category := a.chooseCategory(products)
	if category != "" {
		products = shopping.FilterByCategory(products, category)
	}

	renderProducts("Catálogo", products)
	a.addToCart(products)
}

func (a *application) chooseCategory(products []domain.Product) string {
	categories := shopping.Categories(products)
	if len(categories) == 0 {
		return ""
	}

	options := []string{"0. Todas"}
	for i, c := range categories {
		options = append(options, fmt.Sprintf("%d. %s", i+1, c))
	}
	renderMenu("Categorias", options)

	choice, err := strconv.Atoi(a.prompt("Categoria"))
	if err != nil || choice < 1 || choice > len(categories) {
		return ""
	}
	return categories[choice-1]
}

func (a *application) featuredScreen(ctx context.Context) {
	session := a.sessions.Current()

	products, err := a.storefront.Featured(ctx, session)
	if err != nil {
		renderError(err)
		return
	}

	renderProducts("Destaques", products)
	a.addToCart(products)
}

func (a *application) addToCart(products []domain.Product) {
	if len(products) == 0 {
		return
	}

	raw := a.prompt("Adicionar ao carrinho (nº ou vazio)")
	if raw == "" {
		return
	}

	choice, err := strconv.Atoi(raw)
	if err != nil || choice < 1 || choice > len(products) {
		renderInfo("Produto inválido")
		return
	}

	line := a.cart.AddItem(products[choice-1])
	renderSuccess(fmt.Sprintf("%s adicionado ao carrinho (%s)", line.Product.Name, utils.FormatCurrency(line.Product.UnitPrice)))
}

func (a *application) checkoutScreen() {
	if a.cart.Count() == 0 {
		renderInfo("Carrinho vazio")
		return
	}

	result := a.cart.Checkout()
	renderSuccess(fmt.Sprintf("Compra simulada: %d itens, total %s", result.ItemCount, utils.FormatCurrency(result.Total)))
}

func (a *application) purchasesScreen(ctx context.Context) {
	session := a.sessions.Current()

	orders, err := a.storefront.Purchases(ctx, session)
	if err != nil {
		renderError(err)
		return
	}

	renderOrders("Minhas compras", orders)
}

func (a *application) notificationScreen() {
	for {
		renderNotifications(a.notifications.List())

		renderMenu("Notificações", []string{
			"1. Dispensar uma",
			"2. Limpar todas",
			"0. Voltar",
		})

		switch a.prompt("Opção") {
		case "1":
			a.notifications.Dismiss(a.prompt("ID"))
		case "2":
			a.notifications.ClearAll()
		case "0":
			return
		}
	}
}

// logout encerra a sessão e descarta o catálogo memoizado, para não vazar
// dados entre contas
func (a *application) logout() {
	a.sessions.Logout()
	a.storefront.InvalidateCache()
	renderInfo("Sessão encerrada")
}

func (a *application) prompt(label string) string {
	renderPrompt(label)
	line, err := a.in.ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}

func seedNotifications() []domain.Notification {
	seeds := []domain.Notification{
		{Title: "Novo pedido recebido", Message: "Pedido #1042 aguardando processamento", Severity: domain.SeverityInfo, CreatedAgo: "há 5 min"},
		{Title: "Meta de vendas atingida", Message: "A meta mensal foi superada em 12%", Severity: domain.SeveritySuccess, CreatedAgo: "há 2 h"},
		{Title: "Estoque baixo", Message: "3 produtos abaixo do estoque mínimo", Severity: domain.SeverityWarning, CreatedAgo: "há 1 dia"},
	}

	for i := range seeds {
		id, err := utils.GenerateID()
		if err != nil {
			id = strconv.Itoa(i + 1)
		}
		seeds[i].ID = id
	}
	return seeds
}
