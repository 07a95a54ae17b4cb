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
	"github.com/shifaalhind/backend/internal/repo/carepackage"
	"github.com/shifaalhind/backend/internal/repo/hospital"
	"github.com/shifaalhind/backend/internal/repo/predicate"
	"github.com/shifaalhind/backend/internal/repo/treatment"
)

// CarePackageQuery is the builder for querying CarePackage entities.
type CarePackageQuery struct {
	config
	ctx           *QueryContext
	order         []carepackage.OrderOption
	inters        []Interceptor
	predicates    []predicate.CarePackage
	withTreatment *TreatmentQuery
	withHospital  *HospitalQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CarePackageQuery builder.
func (_q *CarePackageQuery) Where(ps ...predicate.CarePackage) *CarePackageQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CarePackageQuery) Limit(limit int) *CarePackageQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CarePackageQuery) Offset(offset int) *CarePackageQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CarePackageQuery) Unique(unique bool) *CarePackageQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CarePackageQuery) Order(o ...carepackage.OrderOption) *CarePackageQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryTreatment chains the current query on the "treatment" edge.
func (_q *CarePackageQuery) QueryTreatment() *TreatmentQuery {
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
			sqlgraph.From(carepackage.Table, carepackage.FieldID, selector),
			sqlgraph.To(treatment.Table, treatment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, carepackage.TreatmentTable, carepackage.TreatmentColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryHospital chains the current query on the "hospital" edge.
func (_q *CarePackageQuery) QueryHospital() *HospitalQuery {
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
			sqlgraph.From(carepackage.Table, carepackage.FieldID, selector),
			sqlgraph.To(hospital.Table, hospital.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, carepackage.HospitalTable, carepackage.HospitalColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CarePackage entity from the query.
// Returns a *NotFoundError when no CarePackage was found.
func (_q *CarePackageQuery) First(ctx context.Context) (*CarePackage, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{carepackage.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CarePackageQuery) FirstX(ctx context.Context) *CarePackage {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CarePackage ID from the query.
// Returns a *NotFoundError when no CarePackage ID was found.
func (_q *CarePackageQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{carepackage.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CarePackageQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CarePackage entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CarePackage entity is found.
// Returns a *NotFoundError when no CarePackage entities are found.
func (_q *CarePackageQuery) Only(ctx context.Context) (*CarePackage, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{carepackage.Label}
	default:
		return nil, &NotSingularError{carepackage.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CarePackageQuery) OnlyX(ctx context.Context) *CarePackage {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CarePackage ID in the query.
// Returns a *NotSingularError when more than one CarePackage ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CarePackageQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{carepackage.Label}
	default:
		err = &NotSingularError{carepackage.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CarePackageQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CarePackages.
func (_q *CarePackageQuery) All(ctx context.Context) ([]*CarePackage, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CarePackage, *CarePackageQuery]()
	return withInterceptors[[]*CarePackage](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CarePackageQuery) AllX(ctx context.Context) []*CarePackage {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CarePackage IDs.
func (_q *CarePackageQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(carepackage.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CarePackageQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CarePackageQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CarePackageQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CarePackageQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CarePackageQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CarePackageQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CarePackageQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CarePackageQuery) Clone() *CarePackageQuery {
	if _q == nil {
		return nil
	}
	return &CarePackageQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]carepackage.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.CarePackage{}, _q.predicates...),
		withTreatment: _q.withTreatment.Clone(),
		withHospital:  _q.withHospital.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithTreatment tells the query-builder to eager-load the nodes that are connected to
// the "treatment" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CarePackageQuery) WithTreatment(opts ...func(*TreatmentQuery)) *CarePackageQuery {
	query := (&TreatmentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTreatment = query
	return _q
}

// WithHospital tells the query-builder to eager-load the nodes that are connected to
// the "hospital" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CarePackageQuery) WithHospital(opts ...func(*HospitalQuery)) *CarePackageQuery {
	query := (&HospitalClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withHospital = query
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
//	client.CarePackage.Query().
//		GroupBy(carepackage.FieldCreatedAt).
//		Aggregate(repo.Count()).
//		Scan(ctx, &v)
func (_q *CarePackageQuery) GroupBy(field string, fields ...string) *CarePackageGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CarePackageGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = carepackage.Label
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
//	client.CarePackage.Query().
//		Select(carepackage.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *CarePackageQuery) Select(fields ...string) *CarePackageSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CarePackageSelect{CarePackageQuery: _q}
	sbuild.label = carepackage.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CarePackageSelect configured with the given aggregations.
func (_q *CarePackageQuery) Aggregate(fns ...AggregateFunc) *CarePackageSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CarePackageQuery) prepareQuery(ctx context.Context) error {
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
		if !carepackage.ValidColumn(f) {
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

func (_q *CarePackageQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CarePackage, error) {
	var (
		nodes       = []*CarePackage{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withTreatment != nil,
			_q.withHospital != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CarePackage).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CarePackage{config: _q.config}
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
			func(n *CarePackage, e *Treatment) { n.Edges.Treatment = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withHospital; query != nil {
		if err := _q.loadHospital(ctx, query, nodes, nil,
			func(n *CarePackage, e *Hospital) { n.Edges.Hospital = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CarePackageQuery) loadTreatment(ctx context.Context, query *TreatmentQuery, nodes []*CarePackage, init func(*CarePackage), assign func(*CarePackage, *Treatment)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CarePackage)
	for i := range nodes {
		fk := nodes[i].TreatmentID
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
func (_q *CarePackageQuery) loadHospital(ctx context.Context, query *HospitalQuery, nodes []*CarePackage, init func(*CarePackage), assign func(*CarePackage, *Hospital)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*CarePackage)
	for i := range nodes {
		fk := nodes[i].HospitalID
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

func (_q *CarePackageQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CarePackageQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(carepackage.Table, carepackage.Columns, sqlgraph.NewFieldSpec(carepackage.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, carepackage.FieldID)
		for i := range fields {
			if fields[i] != carepackage.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withTreatment != nil {
			_spec.Node.AddColumnOnce(carepackage.FieldTreatmentID)
		}
		if _q.withHospital != nil {
			_spec.Node.AddColumnOnce(carepackage.FieldHospitalID)
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

func (_q *CarePackageQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(carepackage.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = carepackage.Columns
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

// CarePackageGroupBy is the group-by builder for CarePackage entities.
type CarePackageGroupBy struct {
	selector
	build *CarePackageQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CarePackageGroupBy) Aggregate(fns ...AggregateFunc) *CarePackageGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CarePackageGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CarePackageQuery, *CarePackageGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CarePackageGroupBy) sqlScan(ctx context.Context, root *CarePackageQuery, v any) error {
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

// CarePackageSelect is the builder for selecting fields of CarePackage entities.
type CarePackageSelect struct {
	*CarePackageQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CarePackageSelect) Aggregate(fns ...AggregateFunc) *CarePackageSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CarePackageSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CarePackageQuery, *CarePackageSelect](ctx, _s.CarePackageQuery, _s, _s.inters, v)
}

func (_s *CarePackageSelect) sqlScan(ctx context.Context, root *CarePackageQuery, v any) error {
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
