package signals

type sideEffect1[T0 comparable] struct {
	fn      func(T0)
	dep0    Dependency
	cached0 T0
}

func (e *sideEffect1[T0]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
	)
}

func Effect1[T0 comparable](
	dep0 Dependency,
	fn func(T0),
) (stop func()) {
	e := &sideEffect1[T0]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
	}
	dep0.addSubs(e)
	return func() {
		dep0.removeSub(e)
	}
}

type sideEffect2[T0, T1 comparable] struct {
	fn      func(T0, T1)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
}

func (e *sideEffect2[T0, T1]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
	)
}

func Effect2[T0, T1 comparable](
	dep0 Dependency,
	dep1 Dependency,
	fn func(T0, T1),
) (stop func()) {
	e := &sideEffect2[T0, T1]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
	}
}

type sideEffect3[T0, T1, T2 comparable] struct {
	fn      func(T0, T1, T2)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
	dep2    Dependency
	cached2 T2
}

func (e *sideEffect3[T0, T1, T2]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	arg2 := e.dep2.value().(T2)
	if arg2 != e.cached2 {
		allMatch = false
		e.cached2 = arg2
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
		arg2,
	)
}

func Effect3[T0, T1, T2 comparable](
	dep0 Dependency,
	dep1 Dependency,
	dep2 Dependency,
	fn func(T0, T1, T2),
) (stop func()) {
	e := &sideEffect3[T0, T1, T2]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
		dep2:    dep2,
		cached2: dep2.value().(T2),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	dep2.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
		dep2.removeSub(e)
	}
}

type sideEffect4[T0, T1, T2, T3 comparable] struct {
	fn      func(T0, T1, T2, T3)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
	dep2    Dependency
	cached2 T2
	dep3    Dependency
	cached3 T3
}

func (e *sideEffect4[T0, T1, T2, T3]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	arg2 := e.dep2.value().(T2)
	if arg2 != e.cached2 {
		allMatch = false
		e.cached2 = arg2
	}
	arg3 := e.dep3.value().(T3)
	if arg3 != e.cached3 {
		allMatch = false
		e.cached3 = arg3
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
		arg2,
		arg3,
	)
}

func Effect4[T0, T1, T2, T3 comparable](
	dep0 Dependency,
	dep1 Dependency,
	dep2 Dependency,
	dep3 Dependency,
	fn func(T0, T1, T2, T3),
) (stop func()) {
	e := &sideEffect4[T0, T1, T2, T3]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
		dep2:    dep2,
		cached2: dep2.value().(T2),
		dep3:    dep3,
		cached3: dep3.value().(T3),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	dep2.addSubs(e)
	dep3.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
		dep2.removeSub(e)
		dep3.removeSub(e)
	}
}

type sideEffect5[T0, T1, T2, T3, T4 comparable] struct {
	fn      func(T0, T1, T2, T3, T4)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
	dep2    Dependency
	cached2 T2
	dep3    Dependency
	cached3 T3
	dep4    Dependency
	cached4 T4
}

func (e *sideEffect5[T0, T1, T2, T3, T4]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	arg2 := e.dep2.value().(T2)
	if arg2 != e.cached2 {
		allMatch = false
		e.cached2 = arg2
	}
	arg3 := e.dep3.value().(T3)
	if arg3 != e.cached3 {
		allMatch = false
		e.cached3 = arg3
	}
	arg4 := e.dep4.value().(T4)
	if arg4 != e.cached4 {
		allMatch = false
		e.cached4 = arg4
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
	)
}

func Effect5[T0, T1, T2, T3, T4 comparable](
	dep0 Dependency,
	dep1 Dependency,
	dep2 Dependency,
	dep3 Dependency,
	dep4 Dependency,
	fn func(T0, T1, T2, T3, T4),
) (stop func()) {
	e := &sideEffect5[T0, T1, T2, T3, T4]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
		dep2:    dep2,
		cached2: dep2.value().(T2),
		dep3:    dep3,
		cached3: dep3.value().(T3),
		dep4:    dep4,
		cached4: dep4.value().(T4),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	dep2.addSubs(e)
	dep3.addSubs(e)
	dep4.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
		dep2.removeSub(e)
		dep3.removeSub(e)
		dep4.removeSub(e)
	}
}

type sideEffect6[T0, T1, T2, T3, T4, T5 comparable] struct {
	fn      func(T0, T1, T2, T3, T4, T5)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
	dep2    Dependency
	cached2 T2
	dep3    Dependency
	cached3 T3
	dep4    Dependency
	cached4 T4
	dep5    Dependency
	cached5 T5
}

func (e *sideEffect6[T0, T1, T2, T3, T4, T5]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	arg2 := e.dep2.value().(T2)
	if arg2 != e.cached2 {
		allMatch = false
		e.cached2 = arg2
	}
	arg3 := e.dep3.value().(T3)
	if arg3 != e.cached3 {
		allMatch = false
		e.cached3 = arg3
	}
	arg4 := e.dep4.value().(T4)
	if arg4 != e.cached4 {
		allMatch = false
		e.cached4 = arg4
	}
	arg5 := e.dep5.value().(T5)
	if arg5 != e.cached5 {
		allMatch = false
		e.cached5 = arg5
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
		arg5,
	)
}

func Effect6[T0, T1, T2, T3, T4, T5 comparable](
	dep0 Dependency,
	dep1 Dependency,
	dep2 Dependency,
	dep3 Dependency,
	dep4 Dependency,
	dep5 Dependency,
	fn func(T0, T1, T2, T3, T4, T5),
) (stop func()) {
	e := &sideEffect6[T0, T1, T2, T3, T4, T5]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
		dep2:    dep2,
		cached2: dep2.value().(T2),
		dep3:    dep3,
		cached3: dep3.value().(T3),
		dep4:    dep4,
		cached4: dep4.value().(T4),
		dep5:    dep5,
		cached5: dep5.value().(T5),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	dep2.addSubs(e)
	dep3.addSubs(e)
	dep4.addSubs(e)
	dep5.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
		dep2.removeSub(e)
		dep3.removeSub(e)
		dep4.removeSub(e)
		dep5.removeSub(e)
	}
}

type sideEffect7[T0, T1, T2, T3, T4, T5, T6 comparable] struct {
	fn      func(T0, T1, T2, T3, T4, T5, T6)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
	dep2    Dependency
	cached2 T2
	dep3    Dependency
	cached3 T3
	dep4    Dependency
	cached4 T4
	dep5    Dependency
	cached5 T5
	dep6    Dependency
	cached6 T6
}

func (e *sideEffect7[T0, T1, T2, T3, T4, T5, T6]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	arg2 := e.dep2.value().(T2)
	if arg2 != e.cached2 {
		allMatch = false
		e.cached2 = arg2
	}
	arg3 := e.dep3.value().(T3)
	if arg3 != e.cached3 {
		allMatch = false
		e.cached3 = arg3
	}
	arg4 := e.dep4.value().(T4)
	if arg4 != e.cached4 {
		allMatch = false
		e.cached4 = arg4
	}
	arg5 := e.dep5.value().(T5)
	if arg5 != e.cached5 {
		allMatch = false
		e.cached5 = arg5
	}
	arg6 := e.dep6.value().(T6)
	if arg6 != e.cached6 {
		allMatch = false
		e.cached6 = arg6
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
		arg5,
		arg6,
	)
}

func Effect7[T0, T1, T2, T3, T4, T5, T6 comparable](
	dep0 Dependency,
	dep1 Dependency,
	dep2 Dependency,
	dep3 Dependency,
	dep4 Dependency,
	dep5 Dependency,
	dep6 Dependency,
	fn func(T0, T1, T2, T3, T4, T5, T6),
) (stop func()) {
	e := &sideEffect7[T0, T1, T2, T3, T4, T5, T6]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
		dep2:    dep2,
		cached2: dep2.value().(T2),
		dep3:    dep3,
		cached3: dep3.value().(T3),
		dep4:    dep4,
		cached4: dep4.value().(T4),
		dep5:    dep5,
		cached5: dep5.value().(T5),
		dep6:    dep6,
		cached6: dep6.value().(T6),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	dep2.addSubs(e)
	dep3.addSubs(e)
	dep4.addSubs(e)
	dep5.addSubs(e)
	dep6.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
		dep2.removeSub(e)
		dep3.removeSub(e)
		dep4.removeSub(e)
		dep5.removeSub(e)
		dep6.removeSub(e)
	}
}

type sideEffect8[T0, T1, T2, T3, T4, T5, T6, T7 comparable] struct {
	fn      func(T0, T1, T2, T3, T4, T5, T6, T7)
	dep0    Dependency
	cached0 T0
	dep1    Dependency
	cached1 T1
	dep2    Dependency
	cached2 T2
	dep3    Dependency
	cached3 T3
	dep4    Dependency
	cached4 T4
	dep5    Dependency
	cached5 T5
	dep6    Dependency
	cached6 T6
	dep7    Dependency
	cached7 T7
}

func (e *sideEffect8[T0, T1, T2, T3, T4, T5, T6, T7]) Invalidate() {
	allMatch := true
	arg0 := e.dep0.value().(T0)
	if arg0 != e.cached0 {
		allMatch = false
		e.cached0 = arg0
	}
	arg1 := e.dep1.value().(T1)
	if arg1 != e.cached1 {
		allMatch = false
		e.cached1 = arg1
	}
	arg2 := e.dep2.value().(T2)
	if arg2 != e.cached2 {
		allMatch = false
		e.cached2 = arg2
	}
	arg3 := e.dep3.value().(T3)
	if arg3 != e.cached3 {
		allMatch = false
		e.cached3 = arg3
	}
	arg4 := e.dep4.value().(T4)
	if arg4 != e.cached4 {
		allMatch = false
		e.cached4 = arg4
	}
	arg5 := e.dep5.value().(T5)
	if arg5 != e.cached5 {
		allMatch = false
		e.cached5 = arg5
	}
	arg6 := e.dep6.value().(T6)
	if arg6 != e.cached6 {
		allMatch = false
		e.cached6 = arg6
	}
	arg7 := e.dep7.value().(T7)
	if arg7 != e.cached7 {
		allMatch = false
		e.cached7 = arg7
	}
	if allMatch {
		return
	}
	e.fn(
		arg0,
		arg1,
		arg2,
		arg3,
		arg4,
		arg5,
		arg6,
		arg7,
	)
}

func Effect8[T0, T1, T2, T3, T4, T5, T6, T7 comparable](
	dep0 Dependency,
	dep1 Dependency,
	dep2 Dependency,
	dep3 Dependency,
	dep4 Dependency,
	dep5 Dependency,
	dep6 Dependency,
	dep7 Dependency,
	fn func(T0, T1, T2, T3, T4, T5, T6, T7),
) (stop func()) {
	e := &sideEffect8[T0, T1, T2, T3, T4, T5, T6, T7]{
		fn:      fn,
		dep0:    dep0,
		cached0: dep0.value().(T0),
		dep1:    dep1,
		cached1: dep1.value().(T1),
		dep2:    dep2,
		cached2: dep2.value().(T2),
		dep3:    dep3,
		cached3: dep3.value().(T3),
		dep4:    dep4,
		cached4: dep4.value().(T4),
		dep5:    dep5,
		cached5: dep5.value().(T5),
		dep6:    dep6,
		cached6: dep6.value().(T6),
		dep7:    dep7,
		cached7: dep7.value().(T7),
	}
	dep0.addSubs(e)
	dep1.addSubs(e)
	dep2.addSubs(e)
	dep3.addSubs(e)
	dep4.addSubs(e)
	dep5.addSubs(e)
	dep6.addSubs(e)
	dep7.addSubs(e)
	return func() {
		dep0.removeSub(e)
		dep1.removeSub(e)
		dep2.removeSub(e)
		dep3.removeSub(e)
		dep4.removeSub(e)
		dep5.removeSub(e)
		dep6.removeSub(e)
		dep7.removeSub(e)
	}
}
