// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

// Builtin kinds, in the fixed order their numeric values are derived from:
// type traits first, then builtin casts, then builtin functions.
const (
	BuiltinIdentifier BuiltinKind = iota // <identifier>
	BuiltinHasVirtualDestructor          // __has_virtual_destructor
	BuiltinIsAbstract                    // __is_abstract
	BuiltinIsAggregate                   // __is_aggregate
	BuiltinIsArithmetic                  // __is_arithmetic
	BuiltinIsArray                       // __is_array
	BuiltinIsAssignable                  // __is_assignable
	BuiltinIsBaseOf                      // __is_base_of
	BuiltinIsBoundedArray                // __is_bounded_array
	BuiltinIsClass                       // __is_class
	BuiltinIsCompound                    // __is_compound
	BuiltinIsConst                       // __is_const
	BuiltinIsEmpty                       // __is_empty
	BuiltinIsEnum                        // __is_enum
	BuiltinIsFinal                       // __is_final
	BuiltinIsFloatingPoint               // __is_floating_point
	BuiltinIsFunction                    // __is_function
	BuiltinIsFundamental                 // __is_fundamental
	BuiltinIsIntegral                    // __is_integral
	BuiltinIsLayoutCompatible            // __is_layout_compatible
	BuiltinIsLiteralType                 // __is_literal_type
	BuiltinIsLvalueReference             // __is_lvalue_reference
	BuiltinIsMemberFunctionPointer       // __is_member_function_pointer
	BuiltinIsMemberObjectPointer         // __is_member_object_pointer
	BuiltinIsMemberPointer               // __is_member_pointer
	BuiltinIsNullPointer                 // __is_null_pointer
	BuiltinIsObject                      // __is_object
	BuiltinIsPod                         // __is_pod
	BuiltinIsPointer                     // __is_pointer
	BuiltinIsPolymorphic                 // __is_polymorphic
	BuiltinIsReference                   // __is_reference
	BuiltinIsRvalueReference             // __is_rvalue_reference
	BuiltinIsSameAs                      // __is_same_as
	BuiltinIsSame                        // __is_same
	BuiltinIsScalar                      // __is_scalar
	BuiltinIsScopedEnum                  // __is_scoped_enum
	BuiltinIsSigned                      // __is_signed
	BuiltinIsStandardLayout              // __is_standard_layout
	BuiltinIsSwappableWith               // __is_swappable_with
	BuiltinIsTrivial                     // __is_trivial
	BuiltinIsUnboundedArray              // __is_unbounded_array
	BuiltinIsUnion                       // __is_union
	BuiltinIsUnsigned                    // __is_unsigned
	BuiltinIsVoid                        // __is_void
	BuiltinIsVolatile                    // __is_volatile
	BuiltinBitCast                       // __builtin_bit_cast
	BuiltinAbort                         // __builtin_abort
	BuiltinAbs                           // __builtin_abs
	BuiltinAcos                          // __builtin_acos
	BuiltinAcosf                         // __builtin_acosf
	BuiltinAcosh                         // __builtin_acosh
	BuiltinAcoshf                        // __builtin_acoshf
	BuiltinAcoshl                        // __builtin_acoshl
	BuiltinAcosl                         // __builtin_acosl
	BuiltinAddOverflow                   // __builtin_add_overflow
	BuiltinAddressof                     // __builtin_addressof
	BuiltinAlloca                        // __builtin_alloca
	BuiltinAsin                          // __builtin_asin
	BuiltinAsinf                         // __builtin_asinf
	BuiltinAsinh                         // __builtin_asinh
	BuiltinAsinhf                        // __builtin_asinhf
	BuiltinAsinhl                        // __builtin_asinhl
	BuiltinAsinl                         // __builtin_asinl
	BuiltinAssumeAligned                 // __builtin_assume_aligned
	BuiltinAtan                          // __builtin_atan
	BuiltinAtan2f                        // __builtin_atan2f
	BuiltinAtan2l                        // __builtin_atan2l
	BuiltinAtanf                         // __builtin_atanf
	BuiltinAtanh                         // __builtin_atanh
	BuiltinAtanhf                        // __builtin_atanhf
	BuiltinAtanhl                        // __builtin_atanhl
	BuiltinAtanl                         // __builtin_atanl
	BuiltinBswap16                       // __builtin_bswap16
	BuiltinBswap32                       // __builtin_bswap32
	BuiltinBswap64                       // __builtin_bswap64
	BuiltinCabs                          // __builtin_cabs
	BuiltinCabsf                         // __builtin_cabsf
	BuiltinCabsl                         // __builtin_cabsl
	BuiltinCacos                         // __builtin_cacos
	BuiltinCacosf                        // __builtin_cacosf
	BuiltinCacosh                        // __builtin_cacosh
	BuiltinCacoshf                       // __builtin_cacoshf
	BuiltinCacoshl                       // __builtin_cacoshl
	BuiltinCacosl                        // __builtin_cacosl
	BuiltinCarg                          // __builtin_carg
	BuiltinCargf                         // __builtin_cargf
	BuiltinCargl                         // __builtin_cargl
	BuiltinCasin                         // __builtin_casin
	BuiltinCasinf                        // __builtin_casinf
	BuiltinCasinh                        // __builtin_casinh
	BuiltinCasinhf                       // __builtin_casinhf
	BuiltinCasinhl                       // __builtin_casinhl
	BuiltinCasinl                        // __builtin_casinl
	BuiltinCatan                         // __builtin_catan
	BuiltinCatanf                        // __builtin_catanf
	BuiltinCatanh                        // __builtin_catanh
	BuiltinCatanhf                       // __builtin_catanhf
	BuiltinCatanhl                       // __builtin_catanhl
	BuiltinCatanl                        // __builtin_catanl
	BuiltinCbrt                          // __builtin_cbrt
	BuiltinCbrtf                         // __builtin_cbrtf
	BuiltinCbrtl                         // __builtin_cbrtl
	BuiltinCcos                          // __builtin_ccos
	BuiltinCcosf                         // __builtin_ccosf
	BuiltinCcosh                         // __builtin_ccosh
	BuiltinCcoshf                        // __builtin_ccoshf
	BuiltinCcoshl                        // __builtin_ccoshl
	BuiltinCcosl                         // __builtin_ccosl
	BuiltinCeil                          // __builtin_ceil
	BuiltinCeilf                         // __builtin_ceilf
	BuiltinCeill                         // __builtin_ceill
	BuiltinCexp                          // __builtin_cexp
	BuiltinCexpf                         // __builtin_cexpf
	BuiltinCexpl                         // __builtin_cexpl
	BuiltinClog                          // __builtin_clog
	BuiltinClogf                         // __builtin_clogf
	BuiltinClogl                         // __builtin_clogl
	BuiltinClz                           // __builtin_clz
	BuiltinClzl                          // __builtin_clzl
	BuiltinClzll                         // __builtin_clzll
	BuiltinConstantP                     // __builtin_constant_p
	BuiltinCopysignf                     // __builtin_copysignf
	BuiltinCopysignl                     // __builtin_copysignl
	BuiltinCos                           // __builtin_cos
	BuiltinCosf                          // __builtin_cosf
	BuiltinCosh                          // __builtin_cosh
	BuiltinCoshf                         // __builtin_coshf
	BuiltinCoshl                         // __builtin_coshl
	BuiltinCosl                          // __builtin_cosl
	BuiltinCpow                          // __builtin_cpow
	BuiltinCpowf                         // __builtin_cpowf
	BuiltinCpowl                         // __builtin_cpowl
	BuiltinCproj                         // __builtin_cproj
	BuiltinCprojf                        // __builtin_cprojf
	BuiltinCprojl                        // __builtin_cprojl
	BuiltinCsin                          // __builtin_csin
	BuiltinCsinf                         // __builtin_csinf
	BuiltinCsinh                         // __builtin_csinh
	BuiltinCsinhf                        // __builtin_csinhf
	BuiltinCsinhl                        // __builtin_csinhl
	BuiltinCsinl                         // __builtin_csinl
	BuiltinCsqrt                         // __builtin_csqrt
	BuiltinCsqrtf                        // __builtin_csqrtf
	BuiltinCsqrtl                        // __builtin_csqrtl
	BuiltinCtan                          // __builtin_ctan
	BuiltinCtanf                         // __builtin_ctanf
	BuiltinCtanh                         // __builtin_ctanh
	BuiltinCtanhf                        // __builtin_ctanhf
	BuiltinCtanhl                        // __builtin_ctanhl
	BuiltinCtanl                         // __builtin_ctanl
	BuiltinCtz                           // __builtin_ctz
	BuiltinCtzl                          // __builtin_ctzl
	BuiltinCtzll                         // __builtin_ctzll
	BuiltinErf                           // __builtin_erf
	BuiltinErfc                          // __builtin_erfc
	BuiltinErfcf                         // __builtin_erfcf
	BuiltinErfcl                         // __builtin_erfcl
	BuiltinErff                          // __builtin_erff
	BuiltinErfl                          // __builtin_erfl
	BuiltinExp                           // __builtin_exp
	BuiltinExp2                          // __builtin_exp2
	BuiltinExp2f                         // __builtin_exp2f
	BuiltinExp2l                         // __builtin_exp2l
	BuiltinExpect                        // __builtin_expect
	BuiltinExpf                          // __builtin_expf
	BuiltinExpl                          // __builtin_expl
	BuiltinExpm1                         // __builtin_expm1
	BuiltinExpm1f                        // __builtin_expm1f
	BuiltinExpm1l                        // __builtin_expm1l
	BuiltinFabs                          // __builtin_fabs
	BuiltinFabsf                         // __builtin_fabsf
	BuiltinFabsl                         // __builtin_fabsl
	BuiltinFdimf                         // __builtin_fdimf
	BuiltinFdiml                         // __builtin_fdiml
	BuiltinFloor                         // __builtin_floor
	BuiltinFloorf                        // __builtin_floorf
	BuiltinFloorl                        // __builtin_floorl
	BuiltinFmaf                          // __builtin_fmaf
	BuiltinFmal                          // __builtin_fmal
	BuiltinFmaxf                         // __builtin_fmaxf
	BuiltinFmaxl                         // __builtin_fmaxl
	BuiltinFminf                         // __builtin_fminf
	BuiltinFminl                         // __builtin_fminl
	BuiltinFmodf                         // __builtin_fmodf
	BuiltinFmodl                         // __builtin_fmodl
	BuiltinFpclassify                    // __builtin_fpclassify
	BuiltinFree                          // __builtin_free
	BuiltinFrexp                         // __builtin_frexp
	BuiltinFrexpf                        // __builtin_frexpf
	BuiltinFrexpl                        // __builtin_frexpl
	BuiltinHugeVal                       // __builtin_huge_val
	BuiltinHugeValf                      // __builtin_huge_valf
	BuiltinHugeVall                      // __builtin_huge_vall
	BuiltinHypotf                        // __builtin_hypotf
	BuiltinHypotl                        // __builtin_hypotl
	BuiltinIa32Pause                     // __builtin_ia32_pause
	BuiltinIlogb                         // __builtin_ilogb
	BuiltinIlogbf                        // __builtin_ilogbf
	BuiltinIlogbl                        // __builtin_ilogbl
	BuiltinIsConstantEvaluated           // __builtin_is_constant_evaluated
	BuiltinIsfinite                      // __builtin_isfinite
	BuiltinIsgreater                     // __builtin_isgreater
	BuiltinIsgreaterequal                // __builtin_isgreaterequal
	BuiltinIsinf                         // __builtin_isinf
	BuiltinIsinfSign                     // __builtin_isinf_sign
	BuiltinIsless                        // __builtin_isless
	BuiltinIslessequal                   // __builtin_islessequal
	BuiltinIslessgreater                 // __builtin_islessgreater
	BuiltinIsnan                         // __builtin_isnan
	BuiltinIsnormal                      // __builtin_isnormal
	BuiltinIsunordered                   // __builtin_isunordered
	BuiltinLabs                          // __builtin_labs
	BuiltinLdexp                         // __builtin_ldexp
	BuiltinLdexpf                        // __builtin_ldexpf
	BuiltinLdexpl                        // __builtin_ldexpl
	BuiltinLgamma                        // __builtin_lgamma
	BuiltinLgammaf                       // __builtin_lgammaf
	BuiltinLgammal                       // __builtin_lgammal
	BuiltinLlabs                         // __builtin_llabs
	BuiltinLlrint                        // __builtin_llrint
	BuiltinLlrintf                       // __builtin_llrintf
	BuiltinLlrintl                       // __builtin_llrintl
	BuiltinLlround                       // __builtin_llround
	BuiltinLlroundf                      // __builtin_llroundf
	BuiltinLlroundl                      // __builtin_llroundl
	BuiltinLog                           // __builtin_log
	BuiltinLog10                         // __builtin_log10
	BuiltinLog10f                        // __builtin_log10f
	BuiltinLog10l                        // __builtin_log10l
	BuiltinLog1p                         // __builtin_log1p
	BuiltinLog1pf                        // __builtin_log1pf
	BuiltinLog1pl                        // __builtin_log1pl
	BuiltinLog2                          // __builtin_log2
	BuiltinLog2f                         // __builtin_log2f
	BuiltinLog2l                         // __builtin_log2l
	BuiltinLogb                          // __builtin_logb
	BuiltinLogbf                         // __builtin_logbf
	BuiltinLogbl                         // __builtin_logbl
	BuiltinLogf                          // __builtin_logf
	BuiltinLogl                          // __builtin_logl
	BuiltinLrint                         // __builtin_lrint
	BuiltinLrintf                        // __builtin_lrintf
	BuiltinLrintl                        // __builtin_lrintl
	BuiltinLround                        // __builtin_lround
	BuiltinLroundf                       // __builtin_lroundf
	BuiltinLroundl                       // __builtin_lroundl
	BuiltinMemchr                        // __builtin_memchr
	BuiltinMemcmp                        // __builtin_memcmp
	BuiltinMemcpy                        // __builtin_memcpy
	BuiltinMemmove                       // __builtin_memmove
	BuiltinMemset                        // __builtin_memset
	BuiltinModff                         // __builtin_modff
	BuiltinModfl                         // __builtin_modfl
	BuiltinMulOverflow                   // __builtin_mul_overflow
	BuiltinNan                           // __builtin_nan
	BuiltinNanf                          // __builtin_nanf
	BuiltinNanl                          // __builtin_nanl
	BuiltinNans                          // __builtin_nans
	BuiltinNansf                         // __builtin_nansf
	BuiltinNansl                         // __builtin_nansl
	BuiltinNearbyint                     // __builtin_nearbyint
	BuiltinNearbyintf                    // __builtin_nearbyintf
	BuiltinNearbyintl                    // __builtin_nearbyintl
	BuiltinNextafterf                    // __builtin_nextafterf
	BuiltinNextafterl                    // __builtin_nextafterl
	BuiltinNexttoward                    // __builtin_nexttoward
	BuiltinNexttowardf                   // __builtin_nexttowardf
	BuiltinNexttowardl                   // __builtin_nexttowardl
	BuiltinPopcount                      // __builtin_popcount
	BuiltinPopcountl                     // __builtin_popcountl
	BuiltinPopcountll                    // __builtin_popcountll
	BuiltinPowf                          // __builtin_powf
	BuiltinPowl                          // __builtin_powl
	BuiltinRemainderf                    // __builtin_remainderf
	BuiltinRemainderl                    // __builtin_remainderl
	BuiltinRemquof                       // __builtin_remquof
	BuiltinRemquol                       // __builtin_remquol
	BuiltinRint                          // __builtin_rint
	BuiltinRintf                         // __builtin_rintf
	BuiltinRintl                         // __builtin_rintl
	BuiltinRound                         // __builtin_round
	BuiltinRoundf                        // __builtin_roundf
	BuiltinRoundl                        // __builtin_roundl
	BuiltinScalbln                       // __builtin_scalbln
	BuiltinScalblnf                      // __builtin_scalblnf
	BuiltinScalblnl                      // __builtin_scalblnl
	BuiltinScalbn                        // __builtin_scalbn
	BuiltinScalbnf                       // __builtin_scalbnf
	BuiltinScalbnl                       // __builtin_scalbnl
	BuiltinSignbit                       // __builtin_signbit
	BuiltinSin                           // __builtin_sin
	BuiltinSinf                          // __builtin_sinf
	BuiltinSinh                          // __builtin_sinh
	BuiltinSinhf                         // __builtin_sinhf
	BuiltinSinhl                         // __builtin_sinhl
	BuiltinSinl                          // __builtin_sinl
	BuiltinSqrt                          // __builtin_sqrt
	BuiltinSqrtf                         // __builtin_sqrtf
	BuiltinSqrtl                         // __builtin_sqrtl
	BuiltinStrchr                        // __builtin_strchr
	BuiltinStrcmp                        // __builtin_strcmp
	BuiltinStrlen                        // __builtin_strlen
	BuiltinTan                           // __builtin_tan
	BuiltinTanf                          // __builtin_tanf
	BuiltinTanh                          // __builtin_tanh
	BuiltinTanhf                         // __builtin_tanhf
	BuiltinTanhl                         // __builtin_tanhl
	BuiltinTanl                          // __builtin_tanl
	BuiltinTgamma                        // __builtin_tgamma
	BuiltinTgammaf                       // __builtin_tgammaf
	BuiltinTgammal                       // __builtin_tgammal
	BuiltinTrap                          // __builtin_trap
	BuiltinTrunc                         // __builtin_trunc
	BuiltinTruncf                        // __builtin_truncf
	BuiltinTruncl                        // __builtin_truncl
	BuiltinUnreachable                   // __builtin_unreachable
	BuiltinVaEnd                         // __builtin_va_end
	BuiltinVaList                        // __builtin_va_list
	BuiltinVaStart                       // __builtin_va_start
	BuiltinVsnprintf                     // __builtin_vsnprintf

	numBuiltinKinds
)

// builtinSpellings records the canonical spelling of every builtin kind.
var builtinSpellings = [numBuiltinKinds]string{
	BuiltinIdentifier:              "<identifier>",
	BuiltinHasVirtualDestructor:    "__has_virtual_destructor",
	BuiltinIsAbstract:              "__is_abstract",
	BuiltinIsAggregate:             "__is_aggregate",
	BuiltinIsArithmetic:            "__is_arithmetic",
	BuiltinIsArray:                 "__is_array",
	BuiltinIsAssignable:            "__is_assignable",
	BuiltinIsBaseOf:                "__is_base_of",
	BuiltinIsBoundedArray:          "__is_bounded_array",
	BuiltinIsClass:                 "__is_class",
	BuiltinIsCompound:              "__is_compound",
	BuiltinIsConst:                 "__is_const",
	BuiltinIsEmpty:                 "__is_empty",
	BuiltinIsEnum:                  "__is_enum",
	BuiltinIsFinal:                 "__is_final",
	BuiltinIsFloatingPoint:         "__is_floating_point",
	BuiltinIsFunction:              "__is_function",
	BuiltinIsFundamental:           "__is_fundamental",
	BuiltinIsIntegral:              "__is_integral",
	BuiltinIsLayoutCompatible:      "__is_layout_compatible",
	BuiltinIsLiteralType:           "__is_literal_type",
	BuiltinIsLvalueReference:       "__is_lvalue_reference",
	BuiltinIsMemberFunctionPointer: "__is_member_function_pointer",
	BuiltinIsMemberObjectPointer:   "__is_member_object_pointer",
	BuiltinIsMemberPointer:         "__is_member_pointer",
	BuiltinIsNullPointer:           "__is_null_pointer",
	BuiltinIsObject:                "__is_object",
	BuiltinIsPod:                   "__is_pod",
	BuiltinIsPointer:               "__is_pointer",
	BuiltinIsPolymorphic:           "__is_polymorphic",
	BuiltinIsReference:             "__is_reference",
	BuiltinIsRvalueReference:       "__is_rvalue_reference",
	BuiltinIsSameAs:                "__is_same_as",
	BuiltinIsSame:                  "__is_same",
	BuiltinIsScalar:                "__is_scalar",
	BuiltinIsScopedEnum:            "__is_scoped_enum",
	BuiltinIsSigned:                "__is_signed",
	BuiltinIsStandardLayout:        "__is_standard_layout",
	BuiltinIsSwappableWith:         "__is_swappable_with",
	BuiltinIsTrivial:               "__is_trivial",
	BuiltinIsUnboundedArray:        "__is_unbounded_array",
	BuiltinIsUnion:                 "__is_union",
	BuiltinIsUnsigned:              "__is_unsigned",
	BuiltinIsVoid:                  "__is_void",
	BuiltinIsVolatile:              "__is_volatile",
	BuiltinBitCast:                 "__builtin_bit_cast",
	BuiltinAbort:                   "__builtin_abort",
	BuiltinAbs:                     "__builtin_abs",
	BuiltinAcos:                    "__builtin_acos",
	BuiltinAcosf:                   "__builtin_acosf",
	BuiltinAcosh:                   "__builtin_acosh",
	BuiltinAcoshf:                  "__builtin_acoshf",
	BuiltinAcoshl:                  "__builtin_acoshl",
	BuiltinAcosl:                   "__builtin_acosl",
	BuiltinAddOverflow:             "__builtin_add_overflow",
	BuiltinAddressof:               "__builtin_addressof",
	BuiltinAlloca:                  "__builtin_alloca",
	BuiltinAsin:                    "__builtin_asin",
	BuiltinAsinf:                   "__builtin_asinf",
	BuiltinAsinh:                   "__builtin_asinh",
	BuiltinAsinhf:                  "__builtin_asinhf",
	BuiltinAsinhl:                  "__builtin_asinhl",
	BuiltinAsinl:                   "__builtin_asinl",
	BuiltinAssumeAligned:           "__builtin_assume_aligned",
	BuiltinAtan:                    "__builtin_atan",
	BuiltinAtan2f:                  "__builtin_atan2f",
	BuiltinAtan2l:                  "__builtin_atan2l",
	BuiltinAtanf:                   "__builtin_atanf",
	BuiltinAtanh:                   "__builtin_atanh",
	BuiltinAtanhf:                  "__builtin_atanhf",
	BuiltinAtanhl:                  "__builtin_atanhl",
	BuiltinAtanl:                   "__builtin_atanl",
	BuiltinBswap16:                 "__builtin_bswap16",
	BuiltinBswap32:                 "__builtin_bswap32",
	BuiltinBswap64:                 "__builtin_bswap64",
	BuiltinCabs:                    "__builtin_cabs",
	BuiltinCabsf:                   "__builtin_cabsf",
	BuiltinCabsl:                   "__builtin_cabsl",
	BuiltinCacos:                   "__builtin_cacos",
	BuiltinCacosf:                  "__builtin_cacosf",
	BuiltinCacosh:                  "__builtin_cacosh",
	BuiltinCacoshf:                 "__builtin_cacoshf",
	BuiltinCacoshl:                 "__builtin_cacoshl",
	BuiltinCacosl:                  "__builtin_cacosl",
	BuiltinCarg:                    "__builtin_carg",
	BuiltinCargf:                   "__builtin_cargf",
	BuiltinCargl:                   "__builtin_cargl",
	BuiltinCasin:                   "__builtin_casin",
	BuiltinCasinf:                  "__builtin_casinf",
	BuiltinCasinh:                  "__builtin_casinh",
	BuiltinCasinhf:                 "__builtin_casinhf",
	BuiltinCasinhl:                 "__builtin_casinhl",
	BuiltinCasinl:                  "__builtin_casinl",
	BuiltinCatan:                   "__builtin_catan",
	BuiltinCatanf:                  "__builtin_catanf",
	BuiltinCatanh:                  "__builtin_catanh",
	BuiltinCatanhf:                 "__builtin_catanhf",
	BuiltinCatanhl:                 "__builtin_catanhl",
	BuiltinCatanl:                  "__builtin_catanl",
	BuiltinCbrt:                    "__builtin_cbrt",
	BuiltinCbrtf:                   "__builtin_cbrtf",
	BuiltinCbrtl:                   "__builtin_cbrtl",
	BuiltinCcos:                    "__builtin_ccos",
	BuiltinCcosf:                   "__builtin_ccosf",
	BuiltinCcosh:                   "__builtin_ccosh",
	BuiltinCcoshf:                  "__builtin_ccoshf",
	BuiltinCcoshl:                  "__builtin_ccoshl",
	BuiltinCcosl:                   "__builtin_ccosl",
	BuiltinCeil:                    "__builtin_ceil",
	BuiltinCeilf:                   "__builtin_ceilf",
	BuiltinCeill:                   "__builtin_ceill",
	BuiltinCexp:                    "__builtin_cexp",
	BuiltinCexpf:                   "__builtin_cexpf",
	BuiltinCexpl:                   "__builtin_cexpl",
	BuiltinClog:                    "__builtin_clog",
	BuiltinClogf:                   "__builtin_clogf",
	BuiltinClogl:                   "__builtin_clogl",
	BuiltinClz:                     "__builtin_clz",
	BuiltinClzl:                    "__builtin_clzl",
	BuiltinClzll:                   "__builtin_clzll",
	BuiltinConstantP:               "__builtin_constant_p",
	BuiltinCopysignf:               "__builtin_copysignf",
	BuiltinCopysignl:               "__builtin_copysignl",
	BuiltinCos:                     "__builtin_cos",
	BuiltinCosf:                    "__builtin_cosf",
	BuiltinCosh:                    "__builtin_cosh",
	BuiltinCoshf:                   "__builtin_coshf",
	BuiltinCoshl:                   "__builtin_coshl",
	BuiltinCosl:                    "__builtin_cosl",
	BuiltinCpow:                    "__builtin_cpow",
	BuiltinCpowf:                   "__builtin_cpowf",
	BuiltinCpowl:                   "__builtin_cpowl",
	BuiltinCproj:                   "__builtin_cproj",
	BuiltinCprojf:                  "__builtin_cprojf",
	BuiltinCprojl:                  "__builtin_cprojl",
	BuiltinCsin:                    "__builtin_csin",
	BuiltinCsinf:                   "__builtin_csinf",
	BuiltinCsinh:                   "__builtin_csinh",
	BuiltinCsinhf:                  "__builtin_csinhf",
	BuiltinCsinhl:                  "__builtin_csinhl",
	BuiltinCsinl:                   "__builtin_csinl",
	BuiltinCsqrt:                   "__builtin_csqrt",
	BuiltinCsqrtf:                  "__builtin_csqrtf",
	BuiltinCsqrtl:                  "__builtin_csqrtl",
	BuiltinCtan:                    "__builtin_ctan",
	BuiltinCtanf:                   "__builtin_ctanf",
	BuiltinCtanh:                   "__builtin_ctanh",
	BuiltinCtanhf:                  "__builtin_ctanhf",
	BuiltinCtanhl:                  "__builtin_ctanhl",
	BuiltinCtanl:                   "__builtin_ctanl",
	BuiltinCtz:                     "__builtin_ctz",
	BuiltinCtzl:                    "__builtin_ctzl",
	BuiltinCtzll:                   "__builtin_ctzll",
	BuiltinErf:                     "__builtin_erf",
	BuiltinErfc:                    "__builtin_erfc",
	BuiltinErfcf:                   "__builtin_erfcf",
	BuiltinErfcl:                   "__builtin_erfcl",
	BuiltinErff:                    "__builtin_erff",
	BuiltinErfl:                    "__builtin_erfl",
	BuiltinExp:                     "__builtin_exp",
	BuiltinExp2:                    "__builtin_exp2",
	BuiltinExp2f:                   "__builtin_exp2f",
	BuiltinExp2l:                   "__builtin_exp2l",
	BuiltinExpect:                  "__builtin_expect",
	BuiltinExpf:                    "__builtin_expf",
	BuiltinExpl:                    "__builtin_expl",
	BuiltinExpm1:                   "__builtin_expm1",
	BuiltinExpm1f:                  "__builtin_expm1f",
	BuiltinExpm1l:                  "__builtin_expm1l",
	BuiltinFabs:                    "__builtin_fabs",
	BuiltinFabsf:                   "__builtin_fabsf",
	BuiltinFabsl:                   "__builtin_fabsl",
	BuiltinFdimf:                   "__builtin_fdimf",
	BuiltinFdiml:                   "__builtin_fdiml",
	BuiltinFloor:                   "__builtin_floor",
	BuiltinFloorf:                  "__builtin_floorf",
	BuiltinFloorl:                  "__builtin_floorl",
	BuiltinFmaf:                    "__builtin_fmaf",
	BuiltinFmal:                    "__builtin_fmal",
	BuiltinFmaxf:                   "__builtin_fmaxf",
	BuiltinFmaxl:                   "__builtin_fmaxl",
	BuiltinFminf:                   "__builtin_fminf",
	BuiltinFminl:                   "__builtin_fminl",
	BuiltinFmodf:                   "__builtin_fmodf",
	BuiltinFmodl:                   "__builtin_fmodl",
	BuiltinFpclassify:              "__builtin_fpclassify",
	BuiltinFree:                    "__builtin_free",
	BuiltinFrexp:                   "__builtin_frexp",
	BuiltinFrexpf:                  "__builtin_frexpf",
	BuiltinFrexpl:                  "__builtin_frexpl",
	BuiltinHugeVal:                 "__builtin_huge_val",
	BuiltinHugeValf:                "__builtin_huge_valf",
	BuiltinHugeVall:                "__builtin_huge_vall",
	BuiltinHypotf:                  "__builtin_hypotf",
	BuiltinHypotl:                  "__builtin_hypotl",
	BuiltinIa32Pause:               "__builtin_ia32_pause",
	BuiltinIlogb:                   "__builtin_ilogb",
	BuiltinIlogbf:                  "__builtin_ilogbf",
	BuiltinIlogbl:                  "__builtin_ilogbl",
	BuiltinIsConstantEvaluated:     "__builtin_is_constant_evaluated",
	BuiltinIsfinite:                "__builtin_isfinite",
	BuiltinIsgreater:               "__builtin_isgreater",
	BuiltinIsgreaterequal:          "__builtin_isgreaterequal",
	BuiltinIsinf:                   "__builtin_isinf",
	BuiltinIsinfSign:               "__builtin_isinf_sign",
	BuiltinIsless:                  "__builtin_isless",
	BuiltinIslessequal:             "__builtin_islessequal",
	BuiltinIslessgreater:           "__builtin_islessgreater",
	BuiltinIsnan:                   "__builtin_isnan",
	BuiltinIsnormal:                "__builtin_isnormal",
	BuiltinIsunordered:             "__builtin_isunordered",
	BuiltinLabs:                    "__builtin_labs",
	BuiltinLdexp:                   "__builtin_ldexp",
	BuiltinLdexpf:                  "__builtin_ldexpf",
	BuiltinLdexpl:                  "__builtin_ldexpl",
	BuiltinLgamma:                  "__builtin_lgamma",
	BuiltinLgammaf:                 "__builtin_lgammaf",
	BuiltinLgammal:                 "__builtin_lgammal",
	BuiltinLlabs:                   "__builtin_llabs",
	BuiltinLlrint:                  "__builtin_llrint",
	BuiltinLlrintf:                 "__builtin_llrintf",
	BuiltinLlrintl:                 "__builtin_llrintl",
	BuiltinLlround:                 "__builtin_llround",
	BuiltinLlroundf:                "__builtin_llroundf",
	BuiltinLlroundl:                "__builtin_llroundl",
	BuiltinLog:                     "__builtin_log",
	BuiltinLog10:                   "__builtin_log10",
	BuiltinLog10f:                  "__builtin_log10f",
	BuiltinLog10l:                  "__builtin_log10l",
	BuiltinLog1p:                   "__builtin_log1p",
	BuiltinLog1pf:                  "__builtin_log1pf",
	BuiltinLog1pl:                  "__builtin_log1pl",
	BuiltinLog2:                    "__builtin_log2",
	BuiltinLog2f:                   "__builtin_log2f",
	BuiltinLog2l:                   "__builtin_log2l",
	BuiltinLogb:                    "__builtin_logb",
	BuiltinLogbf:                   "__builtin_logbf",
	BuiltinLogbl:                   "__builtin_logbl",
	BuiltinLogf:                    "__builtin_logf",
	BuiltinLogl:                    "__builtin_logl",
	BuiltinLrint:                   "__builtin_lrint",
	BuiltinLrintf:                  "__builtin_lrintf",
	BuiltinLrintl:                  "__builtin_lrintl",
	BuiltinLround:                  "__builtin_lround",
	BuiltinLroundf:                 "__builtin_lroundf",
	BuiltinLroundl:                 "__builtin_lroundl",
	BuiltinMemchr:                  "__builtin_memchr",
	BuiltinMemcmp:                  "__builtin_memcmp",
	BuiltinMemcpy:                  "__builtin_memcpy",
	BuiltinMemmove:                 "__builtin_memmove",
	BuiltinMemset:                  "__builtin_memset",
	BuiltinModff:                   "__builtin_modff",
	BuiltinModfl:                   "__builtin_modfl",
	BuiltinMulOverflow:             "__builtin_mul_overflow",
	BuiltinNan:                     "__builtin_nan",
	BuiltinNanf:                    "__builtin_nanf",
	BuiltinNanl:                    "__builtin_nanl",
	BuiltinNans:                    "__builtin_nans",
	BuiltinNansf:                   "__builtin_nansf",
	BuiltinNansl:                   "__builtin_nansl",
	BuiltinNearbyint:               "__builtin_nearbyint",
	BuiltinNearbyintf:              "__builtin_nearbyintf",
	BuiltinNearbyintl:              "__builtin_nearbyintl",
	BuiltinNextafterf:              "__builtin_nextafterf",
	BuiltinNextafterl:              "__builtin_nextafterl",
	BuiltinNexttoward:              "__builtin_nexttoward",
	BuiltinNexttowardf:             "__builtin_nexttowardf",
	BuiltinNexttowardl:             "__builtin_nexttowardl",
	BuiltinPopcount:                "__builtin_popcount",
	BuiltinPopcountl:               "__builtin_popcountl",
	BuiltinPopcountll:              "__builtin_popcountll",
	BuiltinPowf:                    "__builtin_powf",
	BuiltinPowl:                    "__builtin_powl",
	BuiltinRemainderf:              "__builtin_remainderf",
	BuiltinRemainderl:              "__builtin_remainderl",
	BuiltinRemquof:                 "__builtin_remquof",
	BuiltinRemquol:                 "__builtin_remquol",
	BuiltinRint:                    "__builtin_rint",
	BuiltinRintf:                   "__builtin_rintf",
	BuiltinRintl:                   "__builtin_rintl",
	BuiltinRound:                   "__builtin_round",
	BuiltinRoundf:                  "__builtin_roundf",
	BuiltinRoundl:                  "__builtin_roundl",
	BuiltinScalbln:                 "__builtin_scalbln",
	BuiltinScalblnf:                "__builtin_scalblnf",
	BuiltinScalblnl:                "__builtin_scalblnl",
	BuiltinScalbn:                  "__builtin_scalbn",
	BuiltinScalbnf:                 "__builtin_scalbnf",
	BuiltinScalbnl:                 "__builtin_scalbnl",
	BuiltinSignbit:                 "__builtin_signbit",
	BuiltinSin:                     "__builtin_sin",
	BuiltinSinf:                    "__builtin_sinf",
	BuiltinSinh:                    "__builtin_sinh",
	BuiltinSinhf:                   "__builtin_sinhf",
	BuiltinSinhl:                   "__builtin_sinhl",
	BuiltinSinl:                    "__builtin_sinl",
	BuiltinSqrt:                    "__builtin_sqrt",
	BuiltinSqrtf:                   "__builtin_sqrtf",
	BuiltinSqrtl:                   "__builtin_sqrtl",
	BuiltinStrchr:                  "__builtin_strchr",
	BuiltinStrcmp:                  "__builtin_strcmp",
	BuiltinStrlen:                  "__builtin_strlen",
	BuiltinTan:                     "__builtin_tan",
	BuiltinTanf:                    "__builtin_tanf",
	BuiltinTanh:                    "__builtin_tanh",
	BuiltinTanhf:                   "__builtin_tanhf",
	BuiltinTanhl:                   "__builtin_tanhl",
	BuiltinTanl:                    "__builtin_tanl",
	BuiltinTgamma:                  "__builtin_tgamma",
	BuiltinTgammaf:                 "__builtin_tgammaf",
	BuiltinTgammal:                 "__builtin_tgammal",
	BuiltinTrap:                    "__builtin_trap",
	BuiltinTrunc:                   "__builtin_trunc",
	BuiltinTruncf:                  "__builtin_truncf",
	BuiltinTruncl:                  "__builtin_truncl",
	BuiltinUnreachable:             "__builtin_unreachable",
	BuiltinVaEnd:                   "__builtin_va_end",
	BuiltinVaList:                  "__builtin_va_list",
	BuiltinVaStart:                 "__builtin_va_start",
	BuiltinVsnprintf:               "__builtin_vsnprintf",
}
