package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deicod/springhex/internal/stub"
)

func TestResolveDefaults(t *testing.T) {
	r := NewPathResolver("com.acme", nil)

	cases := map[string]string{
		Model:         "com.acme.order.model",
		Event:         "com.acme.order.model.event",
		Command:       "com.acme.order.application.command",
		Query:         "com.acme.order.application.query",
		PortIn:        "com.acme.order.application.port.input",
		PortOut:       "com.acme.order.application.port.output",
		DTO:           "com.acme.order.infrastructure.web.dto",
		Controller:    "com.acme.order.infrastructure.web",
		Persistence:   "com.acme.order.infrastructure.persistence",
		EventListener: "com.acme.order.infrastructure.event",
	}
	for category, want := range cases {
		assert.Equal(t, want, r.Resolve(category, "order"), category)
	}
}

func TestResolveStatic(t *testing.T) {
	r := NewPathResolver("com.acme", nil)
	assert.Equal(t, "com.acme.infrastructure.config", r.ResolveStatic(Config))
	assert.Equal(t, "com.acme.infrastructure.mediator", r.ResolveStatic(Mediator))
	assert.Equal(t, "com.acme.shared.cqrs", r.ResolveStatic(CQRS))
	assert.Equal(t, "com.acme.shared.domain", r.ResolveStatic(DomainRoot))
}

func TestResolveOverridesAcceptSlashes(t *testing.T) {
	r := NewPathResolver("com.acme", map[string]string{
		Model:   "domain/{aggregate}/model",
		Command: "app.{aggregate}.commands",
		Config:  "config",
	})
	assert.Equal(t, "com.acme.domain.order.model", r.Resolve(Model, "order"))
	assert.Equal(t, "com.acme.app.order.commands", r.Resolve(Command, "order"))
	assert.Equal(t, "com.acme.config", r.ResolveStatic(Config))
	assert.Equal(t, "com.acme.order.application.query", r.Resolve(Query, "order"))
}

func TestResolveAdapterCategory(t *testing.T) {
	r := NewPathResolver("com.acme", nil)
	got := r.ResolveWith(Adapter, Vars{"aggregate": "order", "category": "messaging"})
	assert.Equal(t, "com.acme.order.infrastructure.messaging", got)
}

func TestResolveUnknownCategory(t *testing.T) {
	r := NewPathResolver("com.acme", nil)
	assert.Equal(t, "com.acme.order.saga", r.Resolve("saga", "order"))
}

func TestPopulatePackagePlaceholders(t *testing.T) {
	r := NewPathResolver("com.acme", map[string]string{"saga": "{aggregate}.process"})
	tokens := stub.Tokens{}
	r.PopulatePackagePlaceholders("order", tokens)

	assert.Equal(t, "com.acme.order.model", tokens["{{PACKAGE_MODEL}}"])
	assert.Equal(t, "com.acme.order.application.port.output", tokens["{{PACKAGE_PORT_OUT}}"])
	assert.Equal(t, "com.acme.order.infrastructure.event", tokens["{{PACKAGE_EVENT_LISTENER}}"])
	assert.Equal(t, "com.acme.shared.cqrs", tokens["{{PACKAGE_CQRS}}"])
	assert.Equal(t, "com.acme.shared.domain", tokens["{{PACKAGE_DOMAIN_ROOT}}"])
	assert.Equal(t, "com.acme.order.process", tokens["{{PACKAGE_SAGA}}"])
}

func TestCrudResolver(t *testing.T) {
	r := NewCrudResolver("com.acme", map[string]string{CrudService: "services.{entity}"})
	assert.Equal(t, "com.acme.product.model", r.Resolve(CrudModel, "product"))
	assert.Equal(t, "com.acme.services.product", r.Resolve(CrudService, "product"))

	tokens := stub.Tokens{}
	r.PopulatePackagePlaceholders("product", tokens)
	assert.Equal(t, "com.acme.product.persistence", tokens["{{PACKAGE_PERSISTENCE}}"])
	assert.Equal(t, "com.acme.product.dto", tokens["{{PACKAGE_DTO}}"])
}

func TestOutputPaths(t *testing.T) {
	got := OutputPath("out", "Order", "com.acme.order.model")
	assert.Equal(t, filepath.Join("out", "src", "main", "java", "com", "acme", "order", "model", "Order.java"), got)

	got = TestOutputPath(".", "OrderTest", "com.acme.unit")
	assert.Equal(t, filepath.Join("src", "test", "java", "com", "acme", "unit", "OrderTest.java"), got)
}

func TestPackageConversions(t *testing.T) {
	assert.Equal(t, "com/acme/order", PackageToPath("com.acme.order"))
	assert.Equal(t, "com.acme.order", PathToPackage("com/acme/order"))
	assert.Equal(t, "com.acme.order", PathToPackage(`com\acme\order`))
}

func TestPlaceholderFor(t *testing.T) {
	assert.Equal(t, "{{PACKAGE_PORT_IN}}", PlaceholderFor(PortIn))
	assert.Equal(t, "{{PACKAGE_MODEL}}", PlaceholderFor(Model))
}

func TestInitConfigDocumentsDefaults(t *testing.T) {
	content, err := stub.Load("init/config")
	require.NoError(t, err)

	for category, template := range DefaultPaths {
		assert.Contains(t, content, "#   "+category+": \""+template+"\"", category)
	}
	for layer, template := range DefaultCrudPaths {
		assert.Contains(t, content, "#   "+layer+": \""+template+"\"", layer)
	}
}
