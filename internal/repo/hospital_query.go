// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/doctor"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// HospitalQuery is the builder for querying Hospital entities.
type HospitalQuery struct {
	config
	ctx            *QueryContext
	order          []hospital.OrderOption
	inters         []Interceptor
	predicates     []predicate.Hospital
	withDoctors    *DoctorQuery
	withPackages   *CarePackageQuery
	withTreatments *TreatmentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the HospitalQuery builder.
func (_q *HospitalQuery) Where(ps ...predicate.Hospital) *HospitalQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *HospitalQuery) Limit(limit int) *HospitalQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *HospitalQuery) Offset(offset int) *HospitalQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *HospitalQuery) Unique(unique bool) *HospitalQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *HospitalQuery) Order(o ...hospital.OrderOption) *HospitalQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryDoctors chains the current query on the "doctors" edge.
func (_q *HospitalQuery) QueryDoctors() *DoctorQuery {
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
			sqlgraph.From(hospital.Table, hospital.FieldID, selector),
			sqlgraph.To(doctor.Table, doctor.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hospital.DoctorsTable, hospital.DoctorsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryPackages chains the current query on the "packages" edge.
func (_q *HospitalQuery) QueryPackages() *CarePackageQuery {
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
			sqlgraph.From(hospital.Table, hospital.FieldID, selector),
			sqlgraph.To(carepackage.Table, carepackage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hospital.PackagesTable, hospital.PackagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTreatments chains the current query on the "treatments" edge.
func (_q *HospitalQuery) QueryTreatments() *TreatmentQuery {
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
			sqlgraph.From(hospital.Table, hospital.FieldID, selector),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, hospital.TreatmentsTable, hospital.TreatmentsPrimaryKey...),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Hospital entity from the query.
// Returns a *NotFoundError when no Hospital was found.
func (_q *HospitalQuery) First(ctx context.Context) (*Hospital, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{hospital.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *HospitalQuery) FirstX(ctx context.Context) *Hospital {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Hospital ID from the query.
// Returns a *NotFoundError when no Hospital ID was found.
func (_q *HospitalQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{hospital.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *HospitalQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Hospital entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Hospital entity is found.
// Returns a *NotFoundError when no Hospital entities are found.
func (_q *HospitalQuery) Only(ctx context.Context) (*Hospital, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{hospital.Label}
	default:
		return nil, &NotSingularError{hospital.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *HospitalQuery) OnlyX(ctx context.Context) *Hospital {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Hospital ID in the query.
// Returns a *NotSingularError when more than one Hospital ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *HospitalQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{hospital.Label}
	default:
		err = &NotSingularError{hospital.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *HospitalQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Hospitals.
func (_q *HospitalQuery) All(ctx context.Context) ([]*Hospital, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Hospital, *HospitalQuery]()
	return withInterceptors[[]*Hospital](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *HospitalQuery) AllX(ctx context.Context) []*Hospital {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Hospital IDs.
func (_q *HospitalQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(hospital.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *HospitalQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *HospitalQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*HospitalQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *HospitalQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *HospitalQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *HospitalQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the HospitalQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *HospitalQuery) Clone() *HospitalQuery {
	if _q == nil {
		return nil
	}
	return &HospitalQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]hospital.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.Hospital{}, _q.predicates...),
		withDoctors:    _q.withDoctors.Clone(),
		withPackages:   _q.withPackages.Clone(),
		withTreatments: _q.withTreatments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithDoctors tells the query-builder to eager-load the nodes that are connected to
// the "doctors" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HospitalQuery) WithDoctors(opts ...func(*DoctorQuery)) *HospitalQuery {
	query := (&DoctorClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withDoctors = query
	return _q
}

// WithPackages tells the query-builder to eager-load the nodes that are connected to
// the "packages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HospitalQuery) WithPackages(opts ...func(*CarePackageQuery)) *HospitalQuery {
	query := (&CarePackageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPackages = query
	return _q
}

// WithTreatments tells the query-builder to eager-load the nodes that are connected to
// the "treatments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *HospitalQuery) WithTreatments(opts ...func(*TreatmentQuery)) *HospitalQuery {
	query := (&TreatmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTreatments = query
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
//	client.Hospital.Query().
//		GroupBy(hospital.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *HospitalQuery) GroupBy(field string, fields ...string) *HospitalGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &HospitalGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = hospital.Label
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
//	client.Hospital.Query().
//		Select(hospital.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *HospitalQuery) Select(fields ...string) *HospitalSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &HospitalSelect{HospitalQuery: _q}
	sbuild.label = hospital.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a HospitalSelect configured with the given aggregations.
func (_q *HospitalQuery) Aggregate(fns ...AggregateFunc) *HospitalSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *HospitalQuery) prepareQuery(ctx context.Context) error {
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
		if !hospital.ValidColumn(f) {
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

func (_q *HospitalQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Hospital, error) {
	var (
		nodes       = []*Hospital{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withDoctors != nil,
			_q.withPackages != nil,
			_q.withTreatments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Hospital).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Hospital{config: _q.config}
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
	if query := _q.withDoctors; query != nil {
		if err := _q.loadDoctors(ctx, query, nodes,
			func(n *Hospital) { n.Edges.Doctors = []*Doctor{} },
			func(n *Hospital, e *Doctor) { n.Edges.Doctors = append(n.Edges.Doctors, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withPackages; query != nil {
		if err := _q.loadPackages(ctx, query, nodes,
			func(n *Hospital) { n.Edges.Packages = []*CarePackage{} },
			func(n *Hospital, e *CarePackage) { n.Edges.Packages = append(n.Edges.Packages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTreatments; query != nil {
		if err := _q.loadTreatments(ctx, query, nodes,
			func(n *Hospital) { n.Edges.Treatments = []*Treatment{} },
			func(n *Hospital, e *Treatment) { n.Edges.Treatments = append(n.Edges.Treatments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *HospitalQuery) loadDoctors(ctx context.Context, query *DoctorQuery, nodes []*Hospital, init func(*Hospital), assign func(*Hospital, *Doctor)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Hospital)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(doctor.FieldHospitalID)
	}
	query.Where(predicate.Doctor(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hospital.DoctorsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HospitalID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hospital_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HospitalQuery) loadPackages(ctx context.Context, query *CarePackageQuery, nodes []*Hospital, init func(*Hospital), assign func(*Hospital, *CarePackage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*Hospital)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(carepackage.FieldHospitalID)
	}
	query.Where(predicate.CarePackage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(hospital.PackagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.HospitalID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "hospital_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *HospitalQuery) loadTreatments(ctx context.Context, query *TreatmentQuery, nodes []*Hospital, init func(*Hospital), assign func(*Hospital, *Treatment)) error {
	edgeIDs := make([]driver.Value, len(nodes))
	byID := make(map[uuid.UUID]*Hospital)
	nids := make(map[uuid.UUID]map[*Hospital]struct{})
	for i, node := range nodes {
		edgeIDs[i] = node.ID
		byID[node.ID] = node
		if init != nil {
			init(node)
		}
	}
	query.Where(func(s *sql.Selector) {
		joinT := sql.Table(hospital.TreatmentsTable)
		s.Join(joinT).On(s.C(treatment.FieldID), joinT.C(hospital.TreatmentsPrimaryKey[0]))
		s.Where(sql.InValues(joinT.C(hospital.TreatmentsPrimaryKey[1]), edgeIDs...))
		columns := s.SelectedColumns()
		s.Select(joinT.C(hospital.TreatmentsPrimaryKey[1]))
		s.AppendSelect(columns...)
		s.SetDistinct(false)
	})
	if err := query.prepareQuery(ctx); err != nil {
		return err
	}
	qr := QuerierFunc(func(ctx context.Context, q Query) (Value, error) {
		return query.sqlAll(ctx, func(_ context.Context, spec *sqlgraph.QuerySpec) {
			assign := spec.Assign
			values := spec.ScanValues
			spec.ScanValues = func(columns []string) ([]any, error) {
				values, err := values(columns[1:])
				if err != nil {
					return nil, err
				}
				return append([]any{new(uuid.UUID)}, values...), nil
			}
			spec.Assign = func(columns []string, values []any) error {
				outValue := *values[0].(*uuid.UUID)
				inValue := *values[1].(*uuid.UUID)
				if nids[inValue] == nil {
					nids[inValue] = map[*Hospital]struct{}{byID[outValue]: {}}
					return assign(columns[1:], values[1:])
				}
				nids[inValue][byID[outValue]] = struct{}{}
				return nil
			}
		})
	})
	neighbors, err := withInterceptors[[]*Treatment](ctx, query, qr, query.inters)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected "treatments" node returned %v`, n.ID)
		}
		for kn := range nodes {
			assign(kn, n)
		}
	}
	return nil
}

func (_q *HospitalQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *HospitalQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(hospital.Table, hospital.Columns, sqlgraph.NewFieldSpec(hospital.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hospital.FieldID)
		for i := range fields {
			if fields[i] != hospital.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *HospitalQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(hospital.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = hospital.Columns
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

// HospitalGroupBy is the group-by builder for Hospital entities.
type HospitalGroupBy struct {
	selector
	build *HospitalQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *HospitalGroupBy) Aggregate(fns ...AggregateFunc) *HospitalGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *HospitalGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*HospitalQuery, *HospitalGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *HospitalGroupBy) sqlScan(ctx context.Context, root *HospitalQuery, v any) error {
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

// HospitalSelect is the builder for selecting fields of Hospital entities.
type HospitalSelect struct {
	*HospitalQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *HospitalSelect) Aggregate(fns ...AggregateFunc) *HospitalSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *HospitalSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*HospitalQuery, *HospitalSelect](ctx, _s.HospitalQuery, _s, _s.inters, v)
}

func (_s *HospitalSelect) sqlScan(ctx context.Context, root *HospitalQuery, v any) error {
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
