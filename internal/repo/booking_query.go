// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/booking"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/translator"
	"github.com/shifaalhind/backend/internal/repo/treatment"
	"github.com/shifaalhind/backend/internal/repo/user"
)

// BookingQuery is the builder for querying Booking entities.
type BookingQuery struct {
	config
	ctx              *QueryContext
	order            []booking.OrderOption
	inters           []Interceptor
	predicates       []predicate.Booking
	withTreatment    *TreatmentQuery
	withHospital     *HospitalQuery
	withPackage      *CarePackageQuery
	withDoctor       *DoctorQuery
	withTranslator   *TranslatorQuery
	withAssignedUser *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the BookingQuery builder.
func (_q *BookingQuery) Where(ps ...predicate.Booking) *BookingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *BookingQuery) Limit(limit int) *BookingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *BookingQuery) Offset(offset int) *BookingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *BookingQuery) Unique(unique bool) *BookingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *BookingQuery) Order(o ...booking.OrderOption) *BookingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTreatment chains the current query on the "treatment" edge.
func (_q *BookingQuery) QueryTreatment() *TreatmentQuery {
	query := (&TreatmentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, selector),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.TreatmentTable, booking.TreatmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHospital chains the current query on the "hospital" edge.
func (_q *BookingQuery) QueryHospital() *HospitalQuery {
	query := (&HospitalClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, selector),
			sqlgraph.To(hospital.Table, hospital.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.HospitalTable, booking.HospitalColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPackage chains the current query on the "package" edge.
func (_q *BookingQuery) QueryPackage() *CarePackageQuery {
	query := (&CarePackageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, selector),
			sqlgraph.To(carepackage.Table, carepackage.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.PackageTable, booking.PackageColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryDoctor chains the current query on the "doctor" edge.
func (_q *BookingQuery) QueryDoctor() *DoctorQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.DoctorTable, booking.DoctorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTranslator chains the current query on the "translator" edge.
func (_q *BookingQuery) QueryTranslator() *TranslatorQuery {
	query := (&TranslatorClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, selector),
			sqlgraph.To(translator.Table, translator.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.TranslatorTable, booking.TranslatorColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryAssignedUser chains the current query on the "assigned_user" edge.
func (_q *BookingQuery) QueryAssignedUser() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(booking.Table, booking.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, booking.AssignedUserTable, booking.AssignedUserColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Booking entity from the query.
// Returns a *NotFoundError when no Booking was found.
func (_q *BookingQuery) First(ctx context.Context) (*Booking, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{booking.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *BookingQuery) FirstX(ctx context.Context) *Booking {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Booking ID from the query.
// Returns a *NotFoundError when no Booking ID was found.
func (_q *BookingQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{booking.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *BookingQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Booking entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Booking entity is found.
// Returns a *NotFoundError when no Booking entities are found.
func (_q *BookingQuery) Only(ctx context.Context) (*Booking, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{booking.Label}
	default:
		return nil, &NotSingularError{booking.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *BookingQuery) OnlyX(ctx context.Context) *Booking {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Booking ID in the query.
// Returns a *NotSingularError when more than one Booking ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *BookingQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{booking.Label}
	default:
		err = &NotSingularError{booking.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *BookingQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Bookings.
func (_q *BookingQuery) All(ctx context.Context) ([]*Booking, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Booking, *BookingQuery]()
	return withInterceptors[[]*Booking](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *BookingQuery) AllX(ctx context.Context) []*Booking {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Booking IDs.
func (_q *BookingQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(booking.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *BookingQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *BookingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*BookingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *BookingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *BookingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("repo: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *BookingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the BookingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *BookingQuery) Clone() *BookingQuery {
	if _q == nil {
		return nil
	}
	return &BookingQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]booking.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.Booking{}, _q.predicates...),
		withTreatment:    _q.withTreatment.Clone(),
		withHospital:     _q.withHospital.Clone(),
		withPackage:      _q.withPackage.Clone(),
		withDoctor:       _q.withDoctor.Clone(),
		withTranslator:   _q.withTranslator.Clone(),
		withAssignedUser: _q.withAssignedUser.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTreatment tells the query-builder to eager-load the nodes that are connected to
// the "treatment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BookingQuery) WithTreatment(opts ...func(*TreatmentQuery)) *BookingQuery {
	query := (&TreatmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTreatment = query
	return _q
}

// WithHospital tells the query-builder to eager-load the nodes that are connected to
// the "hospital" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BookingQuery) WithHospital(opts ...func(*HospitalQuery)) *BookingQuery {
	query := (&HospitalClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHospital = query
	return _q
}

// WithPackage tells the query-builder to eager-load the nodes that are connected to
// the "package" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BookingQuery) WithPackage(opts ...func(*CarePackageQuery)) *BookingQuery {
	query := (&CarePackageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPackage = query
	return _q
}

// WithDoctor tells the query-builder to eager-load the nodes that are connected to
// the "doctor" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BookingQuery) WithDoctor(opts ...func(*DoctorQuery)) *BookingQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoctor = query
	return _q
}

// WithTranslator tells the query-builder to eager-load the nodes that are connected to
// the "translator" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BookingQuery) WithTranslator(opts ...func(*TranslatorQuery)) *BookingQuery {
	query := (&TranslatorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTranslator = query
	return _q
}

// WithAssignedUser tells the query-builder to eager-load the nodes that are connected to
// the "assigned_user" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *BookingQuery) WithAssignedUser(opts ...func(*UserQuery)) *BookingQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withAssignedUser = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Booking.Query().
//		GroupBy(booking.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *BookingQuery) GroupBy(field string, fields ...string) *BookingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &BookingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = booking.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.Booking.Query().
//		Select(booking.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *BookingQuery) Select(fields ...string) *BookingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &BookingSelect{BookingQuery: _q}
	sbuild.label = booking.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a BookingSelect configured with the given aggregations.
func (_q *BookingQuery) Aggregate(fns ...AggregateFunc) *BookingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *BookingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("repo: uninitialized interceptor (forgotten import repo/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !booking.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *BookingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Booking, error) {
	var (
		nodes       = []*Booking{}
		_spec       = _q.querySpec()
		loadedTypes = [6]bool{
			_q.withTreatment != nil,
			_q.withHospital != nil,
			_q.withPackage != nil,
			_q.withDoctor != nil,
			_q.withTranslator != nil,
			_q.withAssignedUser != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Booking).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Booking{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withTreatment; query != nil {
		if err := _q.loadTreatment(ctx, query, nodes, nil,
			func(n *Booking, e *Treatment) { n.Edges.Treatment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHospital; query != nil {
		if err := _q.loadHospital(ctx, query, nodes, nil,
			func(n *Booking, e *Hospital) { n.Edges.Hospital = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPackage; query != nil {
		if err := _q.loadPackage(ctx, query, nodes, nil,
			func(n *Booking, e *CarePackage) { n.Edges.Package = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withDoctor; query != nil {
		if err := _q.loadDoctor(ctx, query, nodes, nil,
			func(n *Booking, e *Doctor) { n.Edges.Doctor = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTranslator; query != nil {
		if err := _q.loadTranslator(ctx, query, nodes, nil,
			func(n *Booking, e *Translator) { n.Edges.Translator = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withAssignedUser; query != nil {
		if err := _q.loadAssignedUser(ctx, query, nodes, nil,
			func(n *Booking, e *User) { n.Edges.AssignedUser = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *BookingQuery) loadTreatment(ctx context.Context, query *TreatmentQuery, nodes []*Booking, init func(*Booking), assign func(*Booking, *Treatment)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Booking)
	for i := range nodes {
		if nodes[i].TreatmentID == nil {
			continue
		}
		fk := *nodes[i].TreatmentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(treatment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "treatment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BookingQuery) loadHospital(ctx context.Context, query *HospitalQuery, nodes []*Booking, init func(*Booking), assign func(*Booking, *Hospital)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Booking)
	for i := range nodes {
		if nodes[i].HospitalID == nil {
			continue
		}
		fk := *nodes[i].HospitalID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(hospital.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "hospital_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BookingQuery) loadPackage(ctx context.Context, query *CarePackageQuery, nodes []*Booking, init func(*Booking), assign func(*Booking, *CarePackage)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Booking)
	for i := range nodes {
		if nodes[i].PackageID == nil {
			continue
		}
		fk := *nodes[i].PackageID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(carepackage.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "package_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BookingQuery) loadDoctor(ctx context.Context, query *DoctorQuery, nodes []*Booking, init func(*Booking), assign func(*Booking, *Doctor)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Booking)
	for i := range nodes {
		if nodes[i].DoctorID == nil {
			continue
		}
		fk := *nodes[i].DoctorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(doctor.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "doctor_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BookingQuery) loadTranslator(ctx context.Context, query *TranslatorQuery, nodes []*Booking, init func(*Booking), assign func(*Booking, *Translator)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Booking)
	for i := range nodes {
		if nodes[i].TranslatorID == nil {
			continue
		}
		fk := *nodes[i].TranslatorID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(translator.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "translator_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *BookingQuery) loadAssignedUser(ctx context.Context, query *UserQuery, nodes []*Booking, init func(*Booking), assign func(*Booking, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Booking)
	for i := range nodes {
		if nodes[i].AssignedUserID == nil {
			continue
		}
		fk := *nodes[i].AssignedUserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "assigned_user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *BookingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *BookingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(booking.Table, booking.Columns, sqlgraph.NewFieldSpec(booking.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, booking.FieldID)
		for i := range fields {
			if fields[i] != booking.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTreatment != nil {
			_spec.Node.AddColumnOnce(booking.FieldTreatmentID)
		}
		if _q.withHospital != nil {
			_spec.Node.AddColumnOnce(booking.FieldHospitalID)
		}
		if _q.withPackage != nil {
			_spec.Node.AddColumnOnce(booking.FieldPackageID)
		}
		if _q.withDoctor != nil {
			_spec.Node.AddColumnOnce(booking.FieldDoctorID)
		}
		if _q.withTranslator != nil {
			_spec.Node.AddColumnOnce(booking.FieldTranslatorID)
		}
		if _q.withAssignedUser != nil {
			_spec.Node.AddColumnOnce(booking.FieldAssignedUserID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *BookingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(booking.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = booking.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// BookingGroupBy is the group-by builder for Booking entities.
type BookingGroupBy struct {
	selector
	build *BookingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *BookingGroupBy) Aggregate(fns ...AggregateFunc) *BookingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *BookingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BookingQuery, *BookingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *BookingGroupBy) sqlScan(ctx context.Context, root *BookingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// BookingSelect is the builder for selecting fields of Booking entities.
type BookingSelect struct {
	*BookingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *BookingSelect) Aggregate(fns ...AggregateFunc) *BookingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *BookingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*BookingQuery, *BookingSelect](ctx, _s.BookingQuery, _s, _s.inters, v)
}

func (_s *BookingSelect) sqlScan(ctx context.Context, root *BookingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
