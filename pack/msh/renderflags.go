package msh

// Mesh render flag bits. The codec treats Mesh.RenderFlags as an opaque
// integer; the constants are for consumers building scene state from it.
// Values match the engine's renderflags table.
const (
	DP_WAIT               = 0x1
	RS_NOVTXCHECK         = 0x2
	DP_DONOTCLIP          = 0x4
	DP_DONOTUPDATEEXTENTS = 0x8
	DP_DONOTLIGHT         = 0x10
	RS_DRAWTEXT           = 0x20
	RS_NOALPHA            = 0x40
	RS_RESERVED1          = 0x80
	RS_COLLIDABLE         = 0x100
	RS_2SIDED             = 0x200
	RS_HIDDEN             = 0x400
	RS_NOFOG              = 0x800
	RS_BLACKFOG           = 0x1000
	RS_NOSORT             = 0x2000
	RS_TEXMIRROR          = 0x4000
	RS_TEXCLAMP           = 0x8000

	RS_SRC_ZERO        = 0x10000
	RS_SRC_ONE         = 0x20000
	RS_SRC_SRCCOLOR    = 0x30000
	RS_SRC_INVSRCCOLOR = 0x40000
	RS_SRC_SRCALPHA    = 0x50000
	RS_SRC_INVSRCALPHA = 0x60000
	RS_SRC_DSTALPHA    = 0x70000
	RS_SRC_INVDSTALPHA = 0x80000
	RS_SRC_DSTCOLOR    = 0x90000
	RS_SRC_INVDSTCOLOR = 0xa0000
	RS_SRC_SRCALPHASAT = 0xb0000

	RS_DST_ZERO        = 0x100000
	RS_DST_ONE         = 0x200000
	RS_DST_SRCCOLOR    = 0x300000
	RS_DST_INVSRCCOLOR = 0x400000
	RS_DST_SRCALPHA    = 0x500000
	RS_DST_INVSRCALPHA = 0x600000
	RS_DST_DSTALPHA    = 0x700000
	RS_DST_INVDSTALPHA = 0x800000
	RS_DST_DSTCOLOR    = 0x900000
	RS_DST_INVDSTCOLOR = 0xa00000
	RS_DST_SRCALPHASAT = 0xb00000

	RS_RESERVED2 = 0x1000000
	RS_RESERVED3 = 0x2000000
	RS_RESERVED4 = 0x4000000
	RS_RESERVED5 = 0x8000000

	RS_TEX_DECAL         = 0x10000000
	RS_TEX_MODULATE      = 0x20000000
	RS_TEX_DECALALPHA    = 0x30000000
	RS_TEX_MODULATEALPHA = 0x40000000
	RS_TEX_DECALMASK     = 0x50000000
	RS_TEX_MODULATEMASK  = 0x60000000
	RS_TEX_ADD           = 0x80000000

	DP_MASK       = 0x1d
	RS_TEXBORDER  = 0xc000
	RS_NOZWRITE   = 0x80000000
	RS_SRC_MASK   = 0xf0000
	RS_DST_MASK   = 0xf00000
	RS_TEX_MASK   = 0xf0000000
	RS_BLEND_MASK = 0xf0ff0000
	RS_BLEND_DEF  = 0x40650000
	RS_BLEND_GLOW = 0x40250000

	RS_BLEND_STENCIL_INC = 0x40000000
	RS_BLEND_STENCIL_DEC = 0x40100000
	RS_BLEND_STENCIL_USE = 0x40010000
	RS_BLEND_NODRAW      = 0x40210000
)
