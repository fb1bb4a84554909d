package layout

// CRUD layer names used by make:crud.
const (
	CrudModel       = "model"
	CrudPersistence = "persistence"
	CrudService     = "service"
	CrudController  = "controller"
	CrudDTO         = "dto"
)

// DefaultCrudPaths is the per-entity layer layout for CRUD resources.
var DefaultCrudPaths = map[string]string{
	CrudModel:       "{entity}.model",
	CrudPersistence: "{entity}.persistence",
	CrudService:     "{entity}.service",
	CrudController:  "{entity}.controller",
	CrudDTO:         "{entity}.dto",
}

// NewCrudResolver builds a resolver keyed by {entity} from the `crud`
// section of .hex/config.yml.
func NewCrudResolver(basePackage string, overrides map[string]string) *PathResolver {
	return &PathResolver{
		basePackage: basePackage,
		placeholder: "entity",
		defaults:    DefaultCrudPaths,
		overrides:   overrides,
	}
}
