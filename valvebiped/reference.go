package valvebiped

import (
	"sync"

	"github.com/Link2738/GMod-PM-Proportions-Tool/qc"
)

// referenceQC is the embedded HL2 female reference skeleton, verbatim
// $definebone output of a stock HL2 female playermodel decompile. It is
// the positional half of the proportion trick and must stay byte-stable.
const referenceQC = `$definebone "ValveBiped.Bip01_Pelvis" "" -0.000005 -0.78846 37.913784 0 0 89.999982
$definebone "ValveBiped.Bip01_Spine" "ValveBiped.Bip01_Pelvis" 0.000005 4.212788 -1.689857 -1.602964 89.999982 89.999982
$definebone "ValveBiped.Bip01_Spine1" "ValveBiped.Bip01_Spine" 3.837406 0 0 0 -6.452307 0
$definebone "ValveBiped.Bip01_Spine2" "ValveBiped.Bip01_Spine1" 3.617855 0 0 0 -0.723932 0
$definebone "ValveBiped.Bip01_Spine4" "ValveBiped.Bip01_Spine2" 7.539783 0 0 0 8.927426 0
$definebone "ValveBiped.Bip01_Neck1" "ValveBiped.Bip01_Spine4" 3.178295 0.000001 0 0 12.841531 179.999855
$definebone "ValveBiped.Bip01_Head1" "ValveBiped.Bip01_Neck1" 2.97028 0.000002 0 0 6.295659 0
$definebone "ValveBiped.forward" "ValveBiped.Bip01_Head1" 0 0 0 0 -76 -90.000003
$definebone "ValveBiped.Bip01_L_Clavicle" "ValveBiped.Bip01_Spine4" 2.023708 0.90746 0.852579 -76.44039 166.164378 93.870917
$definebone "ValveBiped.Bip01_L_UpperArm" "ValveBiped.Bip01_L_Clavicle" 4.983671 0 0 12.460347 -43.013512 -87.036698
$definebone "ValveBiped.Bip01_L_Forearm" "ValveBiped.Bip01_L_UpperArm" 11.123055 0.000002 -0.000004 0.000024 -5.909027 0.000001
$definebone "ValveBiped.Bip01_L_Hand" "ValveBiped.Bip01_L_Forearm" 11.208265 -0.000001 -0.000038 -2.211881 2.080013 86.253992
$definebone "ValveBiped.Anim_Attachment_LH" "ValveBiped.Bip01_L_Hand" 2.67609 -1.71244 0 -0.00001 90.000043 90.00003
$definebone "ValveBiped.Bip01_R_Clavicle" "ValveBiped.Bip01_Spine4" 2.023712 0.907463 -0.852528 76.440506 166.163749 -97.982465
$definebone "ValveBiped.Bip01_R_UpperArm" "ValveBiped.Bip01_R_Clavicle" 4.983665 -0.000008 0 -9.640071 -43.598002 90.084492
$definebone "ValveBiped.Bip01_R_Forearm" "ValveBiped.Bip01_R_UpperArm" 11.123062 0 0.000008 -0.000051 -5.909033 -0.000003
$definebone "ValveBiped.Bip01_R_Hand" "ValveBiped.Bip01_R_Forearm" 11.208311 -0.000001 0.000011 2.211372 2.080004 -85.770073
$definebone "ValveBiped.Anim_Attachment_RH" "ValveBiped.Bip01_R_Hand" 2.676098 -1.712452 0 0.000012 -89.999893 -89.999982
$definebone "ValveBiped.Bip01_L_Thigh" "ValveBiped.Bip01_Pelvis" 3.984014 0 -0.000003 2.966031 -92.308197 -89.999982
$definebone "ValveBiped.Bip01_L_Calf" "ValveBiped.Bip01_L_Thigh" 15.94002 0 0 0 2.959556 0
$definebone "ValveBiped.Bip01_L_Foot" "ValveBiped.Bip01_L_Calf" 17.709562 0 0 -3.776628 -62.111978 0.551821
$definebone "ValveBiped.Bip01_L_Toe0" "ValveBiped.Bip01_L_Foot" 6.203997 0.000001 0 0.053513 -28.677396 -0.638641
$definebone "ValveBiped.Bip01_R_Thigh" "ValveBiped.Bip01_Pelvis" -3.984013 0.000008 0.000007 2.966031 -87.691938 -89.999982
$definebone "ValveBiped.Bip01_R_Calf" "ValveBiped.Bip01_R_Thigh" 15.940014 0 0 0 2.959557 0
$definebone "ValveBiped.Bip01_R_Foot" "ValveBiped.Bip01_R_Calf" 17.70956 0 0 3.77585 -62.248951 0.05128
$definebone "ValveBiped.Bip01_R_Toe0" "ValveBiped.Bip01_R_Foot" 6.203997 0 0 -0.354375 -28.587325 -4.50633
$definebone "ValveBiped.Bip01_L_Finger4" "ValveBiped.Bip01_L_Hand" 3.549248 0.198826 -1.489471 21.265186 0.597179 -12.141559
$definebone "ValveBiped.Bip01_L_Finger41" "ValveBiped.Bip01_L_Finger4" 1.219001 0.000004 0 5.585326 -21.005716 -0.264289
$definebone "ValveBiped.Bip01_L_Finger42" "ValveBiped.Bip01_L_Finger41" 0.680004 0 0 4.983486 -9.905281 0.651067
$definebone "ValveBiped.Bip01_L_Finger3" "ValveBiped.Bip01_L_Hand" 3.698013 0.267559 -0.72898 14.909644 -7.176078 -4.669961
$definebone "ValveBiped.Bip01_L_Finger31" "ValveBiped.Bip01_L_Finger3" 1.749004 0 -0.000001 1.552391 -10.89554 0.01218
$definebone "ValveBiped.Bip01_L_Finger32" "ValveBiped.Bip01_L_Finger31" 0.959999 0 -0.000001 2.257584 -13.628772 0.133186
$definebone "ValveBiped.Bip01_L_Finger2" "ValveBiped.Bip01_L_Hand" 3.768507 0.152546 0.071384 1.624114 -0.196891 5.042308
$definebone "ValveBiped.Bip01_L_Finger21" "ValveBiped.Bip01_L_Finger2" 2.038003 -0.000004 0 -0.250149 -32.972588 0.086745
$definebone "ValveBiped.Bip01_L_Finger22" "ValveBiped.Bip01_L_Finger21" 1.067005 -0.000002 0 -0.324978 -5.671931 -0.071332
$definebone "ValveBiped.Bip01_L_Finger1" "ValveBiped.Bip01_L_Hand" 3.783928 -0.017258 0.794555 -12.383867 3.590763 16.23641
$definebone "ValveBiped.Bip01_L_Finger11" "ValveBiped.Bip01_L_Finger1" 1.629002 -0.000004 0.000001 -3.819812 -26.858746 1.078974
$definebone "ValveBiped.Bip01_L_Finger12" "ValveBiped.Bip01_L_Finger11" 0.955999 0 0.000001 -3.99468 -9.74192 0.00005
$definebone "ValveBiped.Bip01_L_Finger0" "ValveBiped.Bip01_L_Hand" 1.258966 -0.297985 1.252593 -30.375159 -37.494593 -73.854726
$definebone "ValveBiped.Bip01_L_Finger01" "ValveBiped.Bip01_L_Finger0" 1.393003 0 0 0.115968 -2.497489 -0.000028
$definebone "ValveBiped.Bip01_L_Finger02" "ValveBiped.Bip01_L_Finger01" 1.100006 0 -0.000002 0.752234 -16.433293 -0.000039
$definebone "ValveBiped.Bip01_R_Finger4" "ValveBiped.Bip01_R_Hand" 3.549276 0.211403 1.487672 -21.265152 0.597118 12.141559
$definebone "ValveBiped.Bip01_R_Finger41" "ValveBiped.Bip01_R_Finger4" 1.219007 -0.000004 0 -5.58529 -21.005748 0.264301
$definebone "ValveBiped.Bip01_R_Finger42" "ValveBiped.Bip01_R_Finger41" 0.680002 0.000002 0 -4.983441 -9.905291 -0.651057
$definebone "ValveBiped.Bip01_R_Finger3" "ValveBiped.Bip01_R_Hand" 3.698029 0.273712 0.726624 -14.90961 -7.176134 4.669963
$definebone "ValveBiped.Bip01_R_Finger31" "ValveBiped.Bip01_R_Finger3" 1.749004 -0.000004 0 -1.552356 -10.895572 -0.012171
$definebone "ValveBiped.Bip01_R_Finger32" "ValveBiped.Bip01_R_Finger31" 0.959999 0.000002 0 -2.257543 -13.628769 -0.133181
$definebone "ValveBiped.Bip01_R_Finger2" "ValveBiped.Bip01_R_Hand" 3.768513 0.151951 -0.07274 -1.624103 -0.196947 -5.042302
$definebone "ValveBiped.Bip01_R_Finger21" "ValveBiped.Bip01_R_Finger2" 2.038005 -0.000004 0 0.250168 -32.972547 -0.086747
$definebone "ValveBiped.Bip01_R_Finger22" "ValveBiped.Bip01_R_Finger21" 1.067001 0.000002 0 0.324998 -5.671872 0.071329
$definebone "ValveBiped.Bip01_R_Finger1" "ValveBiped.Bip01_R_Hand" 3.783916 -0.023956 -0.794453 12.383856 3.590692 -16.236406
$definebone "ValveBiped.Bip01_R_Finger11" "ValveBiped.Bip01_R_Finger1" 1.629004 -0.000008 0 3.819813 -26.858735 -1.078982
$definebone "ValveBiped.Bip01_R_Finger12" "ValveBiped.Bip01_R_Finger11" 0.955999 0.000002 0 3.994679 -9.741871 -0.000053
$definebone "ValveBiped.Bip01_R_Finger0" "ValveBiped.Bip01_R_Hand" 1.258947 -0.308548 -1.250056 30.375111 -37.494559 73.854726
$definebone "ValveBiped.Bip01_R_Finger01" "ValveBiped.Bip01_R_Finger0" 1.393003 0.000004 -0.000002 -0.115952 -2.497446 0.000022
$definebone "ValveBiped.Bip01_R_Finger02" "ValveBiped.Bip01_R_Finger01" 1.100004 0.000002 0.000002 -0.75221 -16.433244 0.000022
$definebone "ValveBiped.Bip01_L_Trapezius" "ValveBiped.Bip01_L_Clavicle" 4.271703 0.000004 0 0 -0.000009 0
$definebone "ValveBiped.Bip01_L_Ulna" "ValveBiped.Bip01_L_Forearm" 5.604147 0 -0.000004 0.000029 0.000002 -1.769064
$definebone "ValveBiped.Bip01_R_Ulna" "ValveBiped.Bip01_R_Forearm" 5.604155 -0.000001 0.000008 -0.000063 -0.000006 2.001338
$definebone "ValveBiped.Bip01_L_Wrist" "ValveBiped.Bip01_L_Forearm" 11.208296 0 -0.000008 0.000029 0.000002 -3.296971
$definebone "ValveBiped.Bip01_L_Bicep" "ValveBiped.Bip01_L_UpperArm" 5.560005 -0.7 -0.500004 0.000029 0.000006 0.000003
$definebone "ValveBiped.Bip01_L_Latt" "ValveBiped.Bip01_Spine2" 2.132019 1.532022 5 0 0 0
$definebone "ValveBiped.Bip01_R_Elbow" "ValveBiped.Bip01_R_UpperArm" 11.12307 0 0.000008 -0.000043 -5.733191 -0.000003
$definebone "ValveBiped.Bip01_R_Latt" "ValveBiped.Bip01_Spine2" 2.132023 1.532021 -5 0 0 0
$definebone "ValveBiped.Bip01_L_Shoulder" "ValveBiped.Bip01_L_UpperArm" 1.500004 0 0 0.000029 0.000006 0.000003
$definebone "ValveBiped.Bip01_R_Wrist" "ValveBiped.Bip01_R_Forearm" 11.208307 -0.000001 0.000011 -0.000063 -0.000006 3.73402
$definebone "ValveBiped.Bip01_L_Elbow" "ValveBiped.Bip01_L_UpperArm" 11.123062 0.000001 -0.000008 0.000027 -5.734216 0
$definebone "ValveBiped.Bip01_R_Trapezius" "ValveBiped.Bip01_R_Clavicle" 4.271699 -0.000011 0 0.000001 -0.000015 0.000001
$definebone "ValveBiped.Bip01_R_Shoulder" "ValveBiped.Bip01_R_UpperArm" 1.500004 0 0 -0.000046 -0.000003 -0.000008
$definebone "ValveBiped.Bip01_R_Bicep" "ValveBiped.Bip01_R_UpperArm" 5.560005 -0.700002 0.500004 -0.000046 -0.000003 -0.000008
`

var (
	referenceOnce sync.Once
	referenceSkel *qc.Skeleton
)

// Reference returns the HL2 female reference skeleton, parsed once per
// process and cached. Every call returns the same instance; callers must
// treat it as immutable.
func Reference() *qc.Skeleton {
	referenceOnce.Do(func() {
		skel, err := qc.ParseBones(referenceQC)
		if err != nil {
			// The embedded block is constant and well-formed; a parse
			// failure here means the source file itself was corrupted.
			panic("valvebiped: embedded reference skeleton: " + err.Error())
		}
		referenceSkel = skel
	})
	return referenceSkel
}

// ParseReference constructs a fresh, caller-owned copy of the reference
// skeleton. Use it when injecting an explicit skeleton value instead of
// sharing the cached singleton.
func ParseReference() (*qc.Skeleton, error) {
	return qc.ParseBones(referenceQC)
}
