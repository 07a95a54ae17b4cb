// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/contentpage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/media"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
	"github.com/shifaalhind/backend/internal/repo/usersession"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Booking is the client for interacting with the Booking builders.
	Booking *BookingClient
	// CarePackage is the client for interacting with the CarePackage builders.
	CarePackage *CarePackageClient
	// ContentPage is the client for interacting with the ContentPage builders.
	ContentPage *ContentPageClient
	// Doctor is the client for interacting with the Doctor builders.
	Doctor *DoctorClient
	// Hospital is the client for interacting with the Hospital builders.
	Hospital *HospitalClient
	// Media is the client for interacting with the Media builders.
	Media *MediaClient
	// Translator is the client for interacting with the Translator builders.
	Translator *TranslatorClient
	// Treatment is the client for interacting with the Treatment builders.
	Treatment *TreatmentClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// UserSession is the client for interacting with the UserSession builders.
	UserSession *UserSessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Booking = NewBookingClient(c.config)
	c.CarePackage = NewCarePackageClient(c.config)
	c.ContentPage = NewContentPageClient(c.config)
	c.Doctor = NewDoctorClient(c.config)
	c.Hospital = NewHospitalClient(c.config)
	c.Media = NewMediaClient(c.config)
	c.Translator = NewTranslatorClient(c.config)
	c.Treatment = NewTreatmentClient(c.config)
	c.User = NewUserClient(c.config)
	c.UserSession = NewUserSessionClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("repo: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("repo: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Booking:     NewBookingClient(cfg),
		CarePackage: NewCarePackageClient(cfg),
		ContentPage: NewContentPageClient(cfg),
		Doctor:      NewDoctorClient(cfg),
		Hospital:    NewHospitalClient(cfg),
		Media:       NewMediaClient(cfg),
		Translator:  NewTranslatorClient(cfg),
		Treatment:   NewTreatmentClient(cfg),
		User:        NewUserClient(cfg),
		UserSession: NewUserSessionClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:         ctx,
		config:      cfg,
		Booking:     NewBookingClient(cfg),
		CarePackage: NewCarePackageClient(cfg),
		ContentPage: NewContentPageClient(cfg),
		Doctor:      NewDoctorClient(cfg),
		Hospital:    NewHospitalClient(cfg),
		Media:       NewMediaClient(cfg),
		Translator:  NewTranslatorClient(cfg),
		Treatment:   NewTreatmentClient(cfg),
		User:        NewUserClient(cfg),
		UserSession: NewUserSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Booking.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Booking, c.CarePackage, c.ContentPage, c.Doctor, c.Hospital, c.Media,
		c.Translator, c.Treatment, c.User, c.UserSession,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Booking, c.CarePackage, c.ContentPage, c.Doctor, c.Hospital, c.Media,
		c.Translator, c.Treatment, c.User, c.UserSession,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BookingMutation:
		return c.Booking.mutate(ctx, m)
	case *CarePackageMutation:
		return c.CarePackage.mutate(ctx, m)
	case *ContentPageMutation:
		return c.ContentPage.mutate(ctx, m)
	case *DoctorMutation:
		return c.Doctor.mutate(ctx, m)
	case *HospitalMutation:
		return c.Hospital.mutate(ctx, m)
	case *MediaMutation:
		return c.Media.mutate(ctx, m)
	case *TranslatorMutation:
		return c.Translator.mutate(ctx, m)
	case *TreatmentMutation:
		return c.Treatment.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *UserSessionMutation:
		return c.UserSession.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("repo: unknown mutation type %T", m)
	}
}

// BookingClient is a client for the Booking schema.
type BookingClient struct {
	config
}

// NewBookingClient returns a client for the Booking from the given config.
func NewBookingClient(c config) *BookingClient {
	return &BookingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `booking.Hooks(f(g(h())))`.
func (c *BookingClient) Use(hooks ...Hook) {
	c.hooks.Booking = append(c.hooks.Booking, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `booking.Intercept(f(g(h())))`.
func (c *BookingClient) Intercept(interceptors ...Interceptor) {
	c.inters.Booking = append(c.inters.Booking, interceptors...)
}

// Create returns a builder for creating a Booking entity.
func (c *BookingClient) Create() *BookingCreate {
	mutation := newBookingMutation(c.config, OpCreate)
	return &BookingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Booking entities.
func (c *BookingClient) CreateBulk(builders ...*BookingCreate) *BookingCreateBulk {
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BookingClient) MapCreateBulk(slice any, setFunc func(*BookingCreate, int)) *BookingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BookingCreateBulk{err: fmt.Errorf("calling to BookingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BookingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BookingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Booking.
func (c *BookingClient) Update() *BookingUpdate {
	mutation := newBookingMutation(c.config, OpUpdate)
	return &BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BookingClient) UpdateOne(_m *Booking) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBooking(_m))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BookingClient) UpdateOneID(id uuid.UUID) *BookingUpdateOne {
	mutation := newBookingMutation(c.config, OpUpdateOne, withBookingID(id))
	return &BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Booking.
func (c *BookingClient) Delete() *BookingDelete {
	mutation := newBookingMutation(c.config, OpDelete)
	return &BookingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BookingClient) DeleteOne(_m *Booking) *BookingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BookingClient) DeleteOneID(id uuid.UUID) *BookingDeleteOne {
	builder := c.Delete().Where(booking.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BookingDeleteOne{builder}
}

// Query returns a query builder for Booking.
func (c *BookingClient) Query() *BookingQuery {
	return &BookingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBooking},
		inters: c.Interceptors(),
	}
}

// Get returns a Booking entity by its id.
func (c *BookingClient) Get(ctx context.Context, id uuid.UUID) (*Booking, error) {
	return c.Query().Where(booking.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BookingClient) GetX(ctx context.Context, id uuid.UUID) *Booking {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTreatment queries the treatment edge of a Booking.
func (c *BookingClient) QueryTreatment(_m *Booking) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.TreatmentTable, booking.TreatmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHospital queries the hospital edge of a Booking.
func (c *BookingClient) QueryHospital(_m *Booking) *HospitalQuery {
	query := (&HospitalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, id),
			sqlgraph.To(hospital.Table, hospital.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.HospitalTable, booking.HospitalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPackage queries the package edge of a Booking.
func (c *BookingClient) QueryPackage(_m *Booking) *CarePackageQuery {
	query := (&CarePackageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, id),
			sqlgraph.To(carepackage.Table, carepackage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.PackageTable, booking.PackageColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryDoctor queries the doctor edge of a Booking.
func (c *BookingClient) QueryDoctor(_m *Booking) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.DoctorTable, booking.DoctorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTranslator queries the translator edge of a Booking.
func (c *BookingClient) QueryTranslator(_m *Booking) *TranslatorQuery {
	query := (&TranslatorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, id),
			sqlgraph.To(translator.Table, translator.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.TranslatorTable, booking.TranslatorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAssignedUser queries the assigned_user edge of a Booking.
func (c *BookingClient) QueryAssignedUser(_m *Booking) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.AssignedUserTable, booking.AssignedUserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BookingClient) Hooks() []Hook {
	return c.hooks.Booking
}

// Interceptors returns the client interceptors.
func (c *BookingClient) Interceptors() []Interceptor {
	return c.inters.Booking
}

func (c *BookingClient) mutate(ctx context.Context, m *BookingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BookingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BookingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BookingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BookingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Booking mutation op: %q", m.Op())
	}
}

// CarePackageClient is a client for the CarePackage schema.
type CarePackageClient struct {
	config
}

// NewCarePackageClient returns a client for the CarePackage from the given config.
func NewCarePackageClient(c config) *CarePackageClient {
	return &CarePackageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `carepackage.Hooks(f(g(h())))`.
func (c *CarePackageClient) Use(hooks ...Hook) {
	c.hooks.CarePackage = append(c.hooks.CarePackage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `carepackage.Intercept(f(g(h())))`.
func (c *CarePackageClient) Intercept(interceptors ...Interceptor) {
	c.inters.CarePackage = append(c.inters.CarePackage, interceptors...)
}

// Create returns a builder for creating a CarePackage entity.
func (c *CarePackageClient) Create() *CarePackageCreate {
	mutation := newCarePackageMutation(c.config, OpCreate)
	return &CarePackageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CarePackage entities.
func (c *CarePackageClient) CreateBulk(builders ...*CarePackageCreate) *CarePackageCreateBulk {
	return &CarePackageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CarePackageClient) MapCreateBulk(slice any, setFunc func(*CarePackageCreate, int)) *CarePackageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CarePackageCreateBulk{err: fmt.Errorf("calling to CarePackageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CarePackageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CarePackageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CarePackage.
func (c *CarePackageClient) Update() *CarePackageUpdate {
	mutation := newCarePackageMutation(c.config, OpUpdate)
	return &CarePackageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CarePackageClient) UpdateOne(_m *CarePackage) *CarePackageUpdateOne {
	mutation := newCarePackageMutation(c.config, OpUpdateOne, withCarePackage(_m))
	return &CarePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CarePackageClient) UpdateOneID(id uuid.UUID) *CarePackageUpdateOne {
	mutation := newCarePackageMutation(c.config, OpUpdateOne, withCarePackageID(id))
	return &CarePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CarePackage.
func (c *CarePackageClient) Delete() *CarePackageDelete {
	mutation := newCarePackageMutation(c.config, OpDelete)
	return &CarePackageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CarePackageClient) DeleteOne(_m *CarePackage) *CarePackageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CarePackageClient) DeleteOneID(id uuid.UUID) *CarePackageDeleteOne {
	builder := c.Delete().Where(carepackage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CarePackageDeleteOne{builder}
}

// Query returns a query builder for CarePackage.
func (c *CarePackageClient) Query() *CarePackageQuery {
	return &CarePackageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCarePackage},
		inters: c.Interceptors(),
	}
}

// Get returns a CarePackage entity by its id.
func (c *CarePackageClient) Get(ctx context.Context, id uuid.UUID) (*CarePackage, error) {
	return c.Query().Where(carepackage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CarePackageClient) GetX(ctx context.Context, id uuid.UUID) *CarePackage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTreatment queries the treatment edge of a CarePackage.
func (c *CarePackageClient) QueryTreatment(_m *CarePackage) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(carepackage.Table, carepackage.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, carepackage.TreatmentTable, carepackage.TreatmentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHospital queries the hospital edge of a CarePackage.
func (c *CarePackageClient) QueryHospital(_m *CarePackage) *HospitalQuery {
	query := (&HospitalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(carepackage.Table, carepackage.FieldID, id),
			sqlgraph.To(hospital.Table, hospital.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, carepackage.HospitalTable, carepackage.HospitalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CarePackageClient) Hooks() []Hook {
	return c.hooks.CarePackage
}

// Interceptors returns the client interceptors.
func (c *CarePackageClient) Interceptors() []Interceptor {
	return c.inters.CarePackage
}

func (c *CarePackageClient) mutate(ctx context.Context, m *CarePackageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CarePackageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CarePackageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CarePackageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CarePackageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown CarePackage mutation op: %q", m.Op())
	}
}

// ContentPageClient is a client for the ContentPage schema.
type ContentPageClient struct {
	config
}

// NewContentPageClient returns a client for the ContentPage from the given config.
func NewContentPageClient(c config) *ContentPageClient {
	return &ContentPageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contentpage.Hooks(f(g(h())))`.
func (c *ContentPageClient) Use(hooks ...Hook) {
	c.hooks.ContentPage = append(c.hooks.ContentPage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contentpage.Intercept(f(g(h())))`.
func (c *ContentPageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ContentPage = append(c.inters.ContentPage, interceptors...)
}

// Create returns a builder for creating a ContentPage entity.
func (c *ContentPageClient) Create() *ContentPageCreate {
	mutation := newContentPageMutation(c.config, OpCreate)
	return &ContentPageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ContentPage entities.
func (c *ContentPageClient) CreateBulk(builders ...*ContentPageCreate) *ContentPageCreateBulk {
	return &ContentPageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContentPageClient) MapCreateBulk(slice any, setFunc func(*ContentPageCreate, int)) *ContentPageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContentPageCreateBulk{err: fmt.Errorf("calling to ContentPageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContentPageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContentPageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ContentPage.
func (c *ContentPageClient) Update() *ContentPageUpdate {
	mutation := newContentPageMutation(c.config, OpUpdate)
	return &ContentPageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContentPageClient) UpdateOne(_m *ContentPage) *ContentPageUpdateOne {
	mutation := newContentPageMutation(c.config, OpUpdateOne, withContentPage(_m))
	return &ContentPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContentPageClient) UpdateOneID(id uuid.UUID) *ContentPageUpdateOne {
	mutation := newContentPageMutation(c.config, OpUpdateOne, withContentPageID(id))
	return &ContentPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ContentPage.
func (c *ContentPageClient) Delete() *ContentPageDelete {
	mutation := newContentPageMutation(c.config, OpDelete)
	return &ContentPageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContentPageClient) DeleteOne(_m *ContentPage) *ContentPageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContentPageClient) DeleteOneID(id uuid.UUID) *ContentPageDeleteOne {
	builder := c.Delete().Where(contentpage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContentPageDeleteOne{builder}
}

// Query returns a query builder for ContentPage.
func (c *ContentPageClient) Query() *ContentPageQuery {
	return &ContentPageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContentPage},
		inters: c.Interceptors(),
	}
}

// Get returns a ContentPage entity by its id.
func (c *ContentPageClient) Get(ctx context.Context, id uuid.UUID) (*ContentPage, error) {
	return c.Query().Where(contentpage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContentPageClient) GetX(ctx context.Context, id uuid.UUID) *ContentPage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAuthor queries the author edge of a ContentPage.
func (c *ContentPageClient) QueryAuthor(_m *ContentPage) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(contentpage.Table, contentpage.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, contentpage.AuthorTable, contentpage.AuthorColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ContentPageClient) Hooks() []Hook {
	return c.hooks.ContentPage
}

// Interceptors returns the client interceptors.
func (c *ContentPageClient) Interceptors() []Interceptor {
	return c.inters.ContentPage
}

func (c *ContentPageClient) mutate(ctx context.Context, m *ContentPageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContentPageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContentPageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContentPageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContentPageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown ContentPage mutation op: %q", m.Op())
	}
}

// DoctorClient is a client for the Doctor schema.
type DoctorClient struct {
	config
}

// NewDoctorClient returns a client for the Doctor from the given config.
func NewDoctorClient(c config) *DoctorClient {
	return &DoctorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `doctor.Hooks(f(g(h())))`.
func (c *DoctorClient) Use(hooks ...Hook) {
	c.hooks.Doctor = append(c.hooks.Doctor, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `doctor.Intercept(f(g(h())))`.
func (c *DoctorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Doctor = append(c.inters.Doctor, interceptors...)
}

// Create returns a builder for creating a Doctor entity.
func (c *DoctorClient) Create() *DoctorCreate {
	mutation := newDoctorMutation(c.config, OpCreate)
	return &DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Doctor entities.
func (c *DoctorClient) CreateBulk(builders ...*DoctorCreate) *DoctorCreateBulk {
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DoctorClient) MapCreateBulk(slice any, setFunc func(*DoctorCreate, int)) *DoctorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DoctorCreateBulk{err: fmt.Errorf("calling to DoctorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DoctorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DoctorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Doctor.
func (c *DoctorClient) Update() *DoctorUpdate {
	mutation := newDoctorMutation(c.config, OpUpdate)
	return &DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DoctorClient) UpdateOne(_m *Doctor) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctor(_m))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DoctorClient) UpdateOneID(id uuid.UUID) *DoctorUpdateOne {
	mutation := newDoctorMutation(c.config, OpUpdateOne, withDoctorID(id))
	return &DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Doctor.
func (c *DoctorClient) Delete() *DoctorDelete {
	mutation := newDoctorMutation(c.config, OpDelete)
	return &DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DoctorClient) DeleteOne(_m *Doctor) *DoctorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DoctorClient) DeleteOneID(id uuid.UUID) *DoctorDeleteOne {
	builder := c.Delete().Where(doctor.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DoctorDeleteOne{builder}
}

// Query returns a query builder for Doctor.
func (c *DoctorClient) Query() *DoctorQuery {
	return &DoctorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDoctor},
		inters: c.Interceptors(),
	}
}

// Get returns a Doctor entity by its id.
func (c *DoctorClient) Get(ctx context.Context, id uuid.UUID) (*Doctor, error) {
	return c.Query().Where(doctor.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DoctorClient) GetX(ctx context.Context, id uuid.UUID) *Doctor {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHospital queries the hospital edge of a Doctor.
func (c *DoctorClient) QueryHospital(_m *Doctor) *HospitalQuery {
	query := (&HospitalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(doctor.Table, doctor.FieldID, id),
			sqlgraph.To(hospital.Table, hospital.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, doctor.HospitalTable, doctor.HospitalColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *DoctorClient) Hooks() []Hook {
	return c.hooks.Doctor
}

// Interceptors returns the client interceptors.
func (c *DoctorClient) Interceptors() []Interceptor {
	return c.inters.Doctor
}

func (c *DoctorClient) mutate(ctx context.Context, m *DoctorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DoctorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DoctorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DoctorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DoctorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Doctor mutation op: %q", m.Op())
	}
}

// HospitalClient is a client for the Hospital schema.
type HospitalClient struct {
	config
}

// NewHospitalClient returns a client for the Hospital from the given config.
func NewHospitalClient(c config) *HospitalClient {
	return &HospitalClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hospital.Hooks(f(g(h())))`.
func (c *HospitalClient) Use(hooks ...Hook) {
	c.hooks.Hospital = append(c.hooks.Hospital, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hospital.Intercept(f(g(h())))`.
func (c *HospitalClient) Intercept(interceptors ...Interceptor) {
	c.inters.Hospital = append(c.inters.Hospital, interceptors...)
}

// Create returns a builder for creating a Hospital entity.
func (c *HospitalClient) Create() *HospitalCreate {
	mutation := newHospitalMutation(c.config, OpCreate)
	return &HospitalCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Hospital entities.
func (c *HospitalClient) CreateBulk(builders ...*HospitalCreate) *HospitalCreateBulk {
	return &HospitalCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HospitalClient) MapCreateBulk(slice any, setFunc func(*HospitalCreate, int)) *HospitalCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HospitalCreateBulk{err: fmt.Errorf("calling to HospitalClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HospitalCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HospitalCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Hospital.
func (c *HospitalClient) Update() *HospitalUpdate {
	mutation := newHospitalMutation(c.config, OpUpdate)
	return &HospitalUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HospitalClient) UpdateOne(_m *Hospital) *HospitalUpdateOne {
	mutation := newHospitalMutation(c.config, OpUpdateOne, withHospital(_m))
	return &HospitalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HospitalClient) UpdateOneID(id uuid.UUID) *HospitalUpdateOne {
	mutation := newHospitalMutation(c.config, OpUpdateOne, withHospitalID(id))
	return &HospitalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Hospital.
func (c *HospitalClient) Delete() *HospitalDelete {
	mutation := newHospitalMutation(c.config, OpDelete)
	return &HospitalDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HospitalClient) DeleteOne(_m *Hospital) *HospitalDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HospitalClient) DeleteOneID(id uuid.UUID) *HospitalDeleteOne {
	builder := c.Delete().Where(hospital.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HospitalDeleteOne{builder}
}

// Query returns a query builder for Hospital.
func (c *HospitalClient) Query() *HospitalQuery {
	return &HospitalQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHospital},
		inters: c.Interceptors(),
	}
}

// Get returns a Hospital entity by its id.
func (c *HospitalClient) Get(ctx context.Context, id uuid.UUID) (*Hospital, error) {
	return c.Query().Where(hospital.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HospitalClient) GetX(ctx context.Context, id uuid.UUID) *Hospital {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryDoctors queries the doctors edge of a Hospital.
func (c *HospitalClient) QueryDoctors(_m *Hospital) *DoctorQuery {
	query := (&DoctorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hospital.Table, hospital.FieldID, id),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hospital.DoctorsTable, hospital.DoctorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPackages queries the packages edge of a Hospital.
func (c *HospitalClient) QueryPackages(_m *Hospital) *CarePackageQuery {
	query := (&CarePackageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hospital.Table, hospital.FieldID, id),
			sqlgraph.To(carepackage.Table, carepackage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hospital.PackagesTable, hospital.PackagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTreatments queries the treatments edge of a Hospital.
func (c *HospitalClient) QueryTreatments(_m *Hospital) *TreatmentQuery {
	query := (&TreatmentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hospital.Table, hospital.FieldID, id),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, hospital.TreatmentsTable, hospital.TreatmentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HospitalClient) Hooks() []Hook {
	return c.hooks.Hospital
}

// Interceptors returns the client interceptors.
func (c *HospitalClient) Interceptors() []Interceptor {
	return c.inters.Hospital
}

func (c *HospitalClient) mutate(ctx context.Context, m *HospitalMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HospitalCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HospitalUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HospitalUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HospitalDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Hospital mutation op: %q", m.Op())
	}
}

// MediaClient is a client for the Media schema.
type MediaClient struct {
	config
}

// NewMediaClient returns a client for the Media from the given config.
func NewMediaClient(c config) *MediaClient {
	return &MediaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `media.Hooks(f(g(h())))`.
func (c *MediaClient) Use(hooks ...Hook) {
	c.hooks.Media = append(c.hooks.Media, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `media.Intercept(f(g(h())))`.
func (c *MediaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Media = append(c.inters.Media, interceptors...)
}

// Create returns a builder for creating a Media entity.
func (c *MediaClient) Create() *MediaCreate {
	mutation := newMediaMutation(c.config, OpCreate)
	return &MediaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Media entities.
func (c *MediaClient) CreateBulk(builders ...*MediaCreate) *MediaCreateBulk {
	return &MediaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MediaClient) MapCreateBulk(slice any, setFunc func(*MediaCreate, int)) *MediaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MediaCreateBulk{err: fmt.Errorf("calling to MediaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MediaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MediaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Media.
func (c *MediaClient) Update() *MediaUpdate {
	mutation := newMediaMutation(c.config, OpUpdate)
	return &MediaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MediaClient) UpdateOne(_m *Media) *MediaUpdateOne {
	mutation := newMediaMutation(c.config, OpUpdateOne, withMedia(_m))
	return &MediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MediaClient) UpdateOneID(id uuid.UUID) *MediaUpdateOne {
	mutation := newMediaMutation(c.config, OpUpdateOne, withMediaID(id))
	return &MediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Media.
func (c *MediaClient) Delete() *MediaDelete {
	mutation := newMediaMutation(c.config, OpDelete)
	return &MediaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MediaClient) DeleteOne(_m *Media) *MediaDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MediaClient) DeleteOneID(id uuid.UUID) *MediaDeleteOne {
	builder := c.Delete().Where(media.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MediaDeleteOne{builder}
}

// Query returns a query builder for Media.
func (c *MediaClient) Query() *MediaQuery {
	return &MediaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMedia},
		inters: c.Interceptors(),
	}
}

// Get returns a Media entity by its id.
func (c *MediaClient) Get(ctx context.Context, id uuid.UUID) (*Media, error) {
	return c.Query().Where(media.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MediaClient) GetX(ctx context.Context, id uuid.UUID) *Media {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MediaClient) Hooks() []Hook {
	return c.hooks.Media
}

// Interceptors returns the client interceptors.
func (c *MediaClient) Interceptors() []Interceptor {
	return c.inters.Media
}

func (c *MediaClient) mutate(ctx context.Context, m *MediaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MediaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MediaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MediaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MediaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Media mutation op: %q", m.Op())
	}
}

// TranslatorClient is a client for the Translator schema.
type TranslatorClient struct {
	config
}

// NewTranslatorClient returns a client for the Translator from the given config.
func NewTranslatorClient(c config) *TranslatorClient {
	return &TranslatorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `translator.Hooks(f(g(h())))`.
func (c *TranslatorClient) Use(hooks ...Hook) {
	c.hooks.Translator = append(c.hooks.Translator, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `translator.Intercept(f(g(h())))`.
func (c *TranslatorClient) Intercept(interceptors ...Interceptor) {
	c.inters.Translator = append(c.inters.Translator, interceptors...)
}

// Create returns a builder for creating a Translator entity.
func (c *TranslatorClient) Create() *TranslatorCreate {
	mutation := newTranslatorMutation(c.config, OpCreate)
	return &TranslatorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Translator entities.
func (c *TranslatorClient) CreateBulk(builders ...*TranslatorCreate) *TranslatorCreateBulk {
	return &TranslatorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TranslatorClient) MapCreateBulk(slice any, setFunc func(*TranslatorCreate, int)) *TranslatorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TranslatorCreateBulk{err: fmt.Errorf("calling to TranslatorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TranslatorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TranslatorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Translator.
func (c *TranslatorClient) Update() *TranslatorUpdate {
	mutation := newTranslatorMutation(c.config, OpUpdate)
	return &TranslatorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TranslatorClient) UpdateOne(_m *Translator) *TranslatorUpdateOne {
	mutation := newTranslatorMutation(c.config, OpUpdateOne, withTranslator(_m))
	return &TranslatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TranslatorClient) UpdateOneID(id uuid.UUID) *TranslatorUpdateOne {
	mutation := newTranslatorMutation(c.config, OpUpdateOne, withTranslatorID(id))
	return &TranslatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Translator.
func (c *TranslatorClient) Delete() *TranslatorDelete {
	mutation := newTranslatorMutation(c.config, OpDelete)
	return &TranslatorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TranslatorClient) DeleteOne(_m *Translator) *TranslatorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TranslatorClient) DeleteOneID(id uuid.UUID) *TranslatorDeleteOne {
	builder := c.Delete().Where(translator.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TranslatorDeleteOne{builder}
}

// Query returns a query builder for Translator.
func (c *TranslatorClient) Query() *TranslatorQuery {
	return &TranslatorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTranslator},
		inters: c.Interceptors(),
	}
}

// Get returns a Translator entity by its id.
func (c *TranslatorClient) Get(ctx context.Context, id uuid.UUID) (*Translator, error) {
	return c.Query().Where(translator.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TranslatorClient) GetX(ctx context.Context, id uuid.UUID) *Translator {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Translator.
func (c *TranslatorClient) QueryUser(_m *Translator) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(translator.Table, translator.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, translator.UserTable, translator.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TranslatorClient) Hooks() []Hook {
	return c.hooks.Translator
}

// Interceptors returns the client interceptors.
func (c *TranslatorClient) Interceptors() []Interceptor {
	return c.inters.Translator
}

func (c *TranslatorClient) mutate(ctx context.Context, m *TranslatorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TranslatorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TranslatorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TranslatorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TranslatorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Translator mutation op: %q", m.Op())
	}
}

// TreatmentClient is a client for the Treatment schema.
type TreatmentClient struct {
	config
}

// NewTreatmentClient returns a client for the Treatment from the given config.
func NewTreatmentClient(c config) *TreatmentClient {
	return &TreatmentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `treatment.Hooks(f(g(h())))`.
func (c *TreatmentClient) Use(hooks ...Hook) {
	c.hooks.Treatment = append(c.hooks.Treatment, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `treatment.Intercept(f(g(h())))`.
func (c *TreatmentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Treatment = append(c.inters.Treatment, interceptors...)
}

// Create returns a builder for creating a Treatment entity.
func (c *TreatmentClient) Create() *TreatmentCreate {
	mutation := newTreatmentMutation(c.config, OpCreate)
	return &TreatmentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Treatment entities.
func (c *TreatmentClient) CreateBulk(builders ...*TreatmentCreate) *TreatmentCreateBulk {
	return &TreatmentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TreatmentClient) MapCreateBulk(slice any, setFunc func(*TreatmentCreate, int)) *TreatmentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TreatmentCreateBulk{err: fmt.Errorf("calling to TreatmentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TreatmentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TreatmentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Treatment.
func (c *TreatmentClient) Update() *TreatmentUpdate {
	mutation := newTreatmentMutation(c.config, OpUpdate)
	return &TreatmentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TreatmentClient) UpdateOne(_m *Treatment) *TreatmentUpdateOne {
	mutation := newTreatmentMutation(c.config, OpUpdateOne, withTreatment(_m))
	return &TreatmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TreatmentClient) UpdateOneID(id uuid.UUID) *TreatmentUpdateOne {
	mutation := newTreatmentMutation(c.config, OpUpdateOne, withTreatmentID(id))
	return &TreatmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Treatment.
func (c *TreatmentClient) Delete() *TreatmentDelete {
	mutation := newTreatmentMutation(c.config, OpDelete)
	return &TreatmentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TreatmentClient) DeleteOne(_m *Treatment) *TreatmentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TreatmentClient) DeleteOneID(id uuid.UUID) *TreatmentDeleteOne {
	builder := c.Delete().Where(treatment.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TreatmentDeleteOne{builder}
}

// Query returns a query builder for Treatment.
func (c *TreatmentClient) Query() *TreatmentQuery {
	return &TreatmentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTreatment},
		inters: c.Interceptors(),
	}
}

// Get returns a Treatment entity by its id.
func (c *TreatmentClient) Get(ctx context.Context, id uuid.UUID) (*Treatment, error) {
	return c.Query().Where(treatment.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TreatmentClient) GetX(ctx context.Context, id uuid.UUID) *Treatment {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHospitals queries the hospitals edge of a Treatment.
func (c *TreatmentClient) QueryHospitals(_m *Treatment) *HospitalQuery {
	query := (&HospitalClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(hospital.Table, hospital.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, treatment.HospitalsTable, treatment.HospitalsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPackages queries the packages edge of a Treatment.
func (c *TreatmentClient) QueryPackages(_m *Treatment) *CarePackageQuery {
	query := (&CarePackageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(treatment.Table, treatment.FieldID, id),
			sqlgraph.To(carepackage.Table, carepackage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, treatment.PackagesTable, treatment.PackagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TreatmentClient) Hooks() []Hook {
	return c.hooks.Treatment
}

// Interceptors returns the client interceptors.
func (c *TreatmentClient) Interceptors() []Interceptor {
	return c.inters.Treatment
}

func (c *TreatmentClient) mutate(ctx context.Context, m *TreatmentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TreatmentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TreatmentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TreatmentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TreatmentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown Treatment mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTranslatorProfile queries the translator_profile edge of a User.
func (c *UserClient) QueryTranslatorProfile(_m *User) *TranslatorQuery {
	query := (&TranslatorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(translator.Table, translator.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.TranslatorProfileTable, user.TranslatorProfileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown User mutation op: %q", m.Op())
	}
}

// UserSessionClient is a client for the UserSession schema.
type UserSessionClient struct {
	config
}

// NewUserSessionClient returns a client for the UserSession from the given config.
func NewUserSessionClient(c config) *UserSessionClient {
	return &UserSessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `usersession.Hooks(f(g(h())))`.
func (c *UserSessionClient) Use(hooks ...Hook) {
	c.hooks.UserSession = append(c.hooks.UserSession, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `usersession.Intercept(f(g(h())))`.
func (c *UserSessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.UserSession = append(c.inters.UserSession, interceptors...)
}

// Create returns a builder for creating a UserSession entity.
func (c *UserSessionClient) Create() *UserSessionCreate {
	mutation := newUserSessionMutation(c.config, OpCreate)
	return &UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of UserSession entities.
func (c *UserSessionClient) CreateBulk(builders ...*UserSessionCreate) *UserSessionCreateBulk {
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserSessionClient) MapCreateBulk(slice any, setFunc func(*UserSessionCreate, int)) *UserSessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserSessionCreateBulk{err: fmt.Errorf("calling to UserSessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserSessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserSessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for UserSession.
func (c *UserSessionClient) Update() *UserSessionUpdate {
	mutation := newUserSessionMutation(c.config, OpUpdate)
	return &UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserSessionClient) UpdateOne(_m *UserSession) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSession(_m))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserSessionClient) UpdateOneID(id uuid.UUID) *UserSessionUpdateOne {
	mutation := newUserSessionMutation(c.config, OpUpdateOne, withUserSessionID(id))
	return &UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for UserSession.
func (c *UserSessionClient) Delete() *UserSessionDelete {
	mutation := newUserSessionMutation(c.config, OpDelete)
	return &UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserSessionClient) DeleteOne(_m *UserSession) *UserSessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserSessionClient) DeleteOneID(id uuid.UUID) *UserSessionDeleteOne {
	builder := c.Delete().Where(usersession.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserSessionDeleteOne{builder}
}

// Query returns a query builder for UserSession.
func (c *UserSessionClient) Query() *UserSessionQuery {
	return &UserSessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUserSession},
		inters: c.Interceptors(),
	}
}

// Get returns a UserSession entity by its id.
func (c *UserSessionClient) Get(ctx context.Context, id uuid.UUID) (*UserSession, error) {
	return c.Query().Where(usersession.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserSessionClient) GetX(ctx context.Context, id uuid.UUID) *UserSession {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a UserSession.
func (c *UserSessionClient) QueryUser(_m *UserSession) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(usersession.Table, usersession.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, usersession.UserTable, usersession.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserSessionClient) Hooks() []Hook {
	return c.hooks.UserSession
}

// Interceptors returns the client interceptors.
func (c *UserSessionClient) Interceptors() []Interceptor {
	return c.inters.UserSession
}

func (c *UserSessionClient) mutate(ctx context.Context, m *UserSessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserSessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserSessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserSessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserSessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("repo: unknown UserSession mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Booking, CarePackage, ContentPage, Doctor, Hospital, Media, Translator,
		Treatment, User, UserSession []ent.Hook
	}
	inters struct {
		Booking, CarePackage, ContentPage, Doctor, Hospital, Media, Translator,
		Treatment, User, UserSession []ent.Interceptor
	}
)
